package maidenhead

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const epsilonDegrees = 1e-9 // slack for a degrees -> radians -> degrees trip

// LocatorToLatLng converts a 4 or 6 character locator to the latitude and
// longitude, in degrees, of the center of its cell. A 4 character locator
// resolves to the center of its "ll" subsquare.
func LocatorToLatLng(locator string) (lat, lng float64, err error) {
	t, err := breakLocatorString(locator)
	if err != nil {
		return 0, 0, err
	}
	lat, lng = t.center()
	return lat, lng, nil
}

// LatLngToLocator converts a latitude and longitude in degrees to a 6
// character locator. Points on the north pole or the antimeridian at +180
// fall in the last row or column of cells.
func LatLngToLocator(lat, lng float64) (string, error) {
	return encode(lat, lng, PrecisionSubsquare)
}

// ToGeodetic converts a locator to the geodetic coordinates of its cell
// center, see LocatorToLatLng.
func ToGeodetic(locator string) (s2.LatLng, error) {
	lat, lng, err := LocatorToLatLng(locator)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLngFromDegrees(lat, lng), nil
}

// FromGeodetic converts geodetic coordinates to a locator with the given
// number of character pairs, PrecisionSquare or PrecisionSubsquare.
func FromGeodetic(geodeticCoordinates s2.LatLng, precision int) (string, error) {
	lat := snapToLimit(geodeticCoordinates.Lat.Degrees(), 90)
	lng := snapToLimit(geodeticCoordinates.Lng.Degrees(), 180)
	return encode(lat, lng, precision)
}

// Bounds returns the rectangle covered by the locator: the square for a 4
// character locator, the subsquare for a 6 character one.
func Bounds(locator string) (s2.Rect, error) {
	t, err := breakLocatorString(locator)
	if err != nil {
		return s2.Rect{}, err
	}

	south, west := t.squareOrigin()
	height, width := squareHeight, squareWidth
	if t.precision == PrecisionSubsquare {
		south += float64(t.subsquareLat) * subsquareHeight
		west += float64(t.subsquareLng) * subsquareWidth
		height, width = subsquareHeight, subsquareWidth
	}

	lo := s2.LatLngFromDegrees(south, west)
	hi := s2.LatLngFromDegrees(south+height, west+width)
	return s2.Rect{
		Lat: r1.Interval{
			Lo: math.Max(lo.Lat.Radians(), -math.Pi/2),
			Hi: math.Min(hi.Lat.Radians(), math.Pi/2),
		},
		Lng: s1.IntervalFromEndpoints(
			math.Max(lo.Lng.Radians(), -math.Pi),
			math.Min(hi.Lng.Radians(), math.Pi)),
	}, nil
}

// squareOrigin returns the south west corner of the locator's square.
func (t tiers) squareOrigin() (lat, lng float64) {
	lat = -90 + float64(t.fieldLat)*fieldHeight + float64(t.squareLat)*squareHeight
	lng = -180 + float64(t.fieldLng)*fieldWidth + float64(t.squareLng)*squareWidth
	return lat, lng
}

func (t tiers) center() (lat, lng float64) {
	lat, lng = t.squareOrigin()
	lat += (float64(t.subsquareLat) + 0.5) * subsquareHeight
	lng += (float64(t.subsquareLng) + 0.5) * subsquareWidth
	return lat, lng
}

func encode(lat, lng float64, precision int) (string, error) {
	// written as negations so NaN is rejected
	if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
		return "", ErrInvalidCoordinate
	}
	if precision != PrecisionSquare && precision != PrecisionSubsquare {
		return "", ErrInvalidPrecision
	}

	lngIndex := cellIndex((lng + 180) * (subsquareCount / squareWidth))
	latIndex := cellIndex((lat + 90) * (subsquareCount / squareHeight))

	const perField = squareCount * subsquareCount
	t := tiers{
		fieldLng:     lngIndex / perField,
		fieldLat:     latIndex / perField,
		squareLng:    lngIndex / subsquareCount % squareCount,
		squareLat:    latIndex / subsquareCount % squareCount,
		subsquareLng: lngIndex % subsquareCount,
		subsquareLat: latIndex % subsquareCount,
		precision:    precision,
	}
	return makeLocatorString(t), nil
}

// cellIndex truncates a non-negative offset measured in subsquares, folding
// the upper edge of the globe into the last cell.
func cellIndex(offset float64) int {
	i := int(math.Floor(offset))
	if i >= cellsPerAxis {
		i = cellsPerAxis - 1
	}
	return i
}

func snapToLimit(v, limit float64) float64 {
	if a := math.Abs(v); a > limit && a <= limit+epsilonDegrees {
		return math.Copysign(limit, v)
	}
	return v
}

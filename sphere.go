package maidenhead

import (
	"errors"
	"math"

	"github.com/golang/geo/s2"
)

// ErrInvalidRadius is returned by NewSphere for a radius that is not a
// positive finite number.
var ErrInvalidRadius = errors.New("radius must be greater than zero")

// Path is the great-circle relationship from a first point to a second one.
type Path struct {
	Km  float64 `json:"km" yaml:"km"`   // distance in kilometers
	Deg float64 `json:"deg" yaml:"deg"` // initial bearing in degrees, [0, 360)
}

// Sphere computes great-circle distances and bearings between locators on a
// sphere of fixed radius.
type Sphere struct {
	radius float64
}

// NewSphere constructs a Sphere with the given radius in kilometers.
func NewSphere(radiusKm float64) (*Sphere, error) {
	if !(radiusKm > 0) || math.IsInf(radiusKm, 1) {
		return nil, ErrInvalidRadius
	}
	return &Sphere{radius: radiusKm}, nil
}

// Radius returns the sphere radius in kilometers.
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Distance returns the great-circle distance in kilometers between the
// centers of two locators.
func (s *Sphere) Distance(locatorA, locatorB string) (float64, error) {
	from, to, err := decodePair(locatorA, locatorB)
	if err != nil {
		return 0, err
	}
	return s.DistanceBetween(from, to), nil
}

// BearingDistance returns the distance and initial bearing from the center
// of locatorA to the center of locatorB.
func (s *Sphere) BearingDistance(locatorA, locatorB string) (Path, error) {
	from, to, err := decodePair(locatorA, locatorB)
	if err != nil {
		return Path{}, err
	}
	return s.GreatCircle(from, to), nil
}

// GreatCircle returns the distance and initial bearing between two points.
func (s *Sphere) GreatCircle(from, to s2.LatLng) Path {
	return Path{
		Km:  s.DistanceBetween(from, to),
		Deg: InitialBearing(from, to),
	}
}

// DistanceBetween returns the haversine distance in kilometers between two
// points.
func (s *Sphere) DistanceBetween(from, to s2.LatLng) float64 {
	return from.Distance(to).Radians() * s.radius
}

// InitialBearing returns the compass heading in degrees, in [0, 360), at
// which the great circle from one point to another leaves the first point.
// 0 is north and 90 is east.
func InitialBearing(from, to s2.LatLng) float64 {
	lat1 := from.Lat.Radians()
	lat2 := to.Lat.Radians()
	dLng := to.Lng.Radians() - from.Lng.Radians()

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	theta := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(theta+360, 360)
}

func decodePair(locatorA, locatorB string) (s2.LatLng, s2.LatLng, error) {
	from, err := ToGeodetic(locatorA)
	if err != nil {
		return s2.LatLng{}, s2.LatLng{}, err
	}
	to, err := ToGeodetic(locatorB)
	if err != nil {
		return s2.LatLng{}, s2.LatLng{}, err
	}
	return from, to, nil
}

package maidenhead_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/tzneal/maidenhead"
)

// closeTo matches two decimal places.
const closeTo = 0.005

func expectClose(t *testing.T, what string, got, expected float64) {
	t.Helper()
	if math.Abs(got-expected) >= closeTo {
		t.Errorf("%s: got %f, expected %f", what, got, expected)
	}
}

func TestLocatorToLatLng(t *testing.T) {
	for _, tc := range []struct {
		locator  string
		lat, lng float64
	}{
		{"KP20le", 60.188, 24.958},
		{"FN31pr", 41.729, -72.708},
		{"fn31PR", 41.729, -72.708},
		// center of the "ll" subsquare, not of the square
		{"FN20", 40.48, -75.04},
		// upper edge of the alphabet is accepted as is
		{"RR73", 83.479, 174.96},
		{"AA00aa", -89.979, -179.958},
		{"RR99xx", 89.979, 179.958},
	} {
		lat, lng, err := maidenhead.LocatorToLatLng(tc.locator)
		if err != nil {
			t.Fatalf("unexpected error decoding %s: %s", tc.locator, err)
		}
		expectClose(t, tc.locator+" lat", lat, tc.lat)
		expectClose(t, tc.locator+" lng", lng, tc.lng)
	}
}

func TestLocatorToLatLngInvalid(t *testing.T) {
	for _, v := range []string{"RZ73", "R73", "", "KP20lz"} {
		_, _, err := maidenhead.LocatorToLatLng(v)
		if !errors.Is(err, maidenhead.ErrInvalidLocator) {
			t.Fatalf("expected ErrInvalidLocator for %q, got %v", v, err)
		}
		if err.Error() != "Input is not valid locator string" {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestLatLngToLocator(t *testing.T) {
	for _, tc := range []struct {
		lat, lng float64
		expected string
	}{
		{14.3125, -32.125, "HK34wh"},
		{60.179, 24.945, "KP20le"},
		{-33.886048, 151.193546, "QF56oc"},
		{-22.904788, -43.184915, "GG87jc"},
		{0, 0, "JJ00aa"},
		{-90, -180, "AA00aa"},
		{90, 180, "RR99xx"},
		{90, -180, "AR09ax"},
	} {
		got, err := maidenhead.LatLngToLocator(tc.lat, tc.lng)
		if err != nil {
			t.Fatalf("unexpected error encoding %f %f: %s", tc.lat, tc.lng, err)
		}
		if got != tc.expected {
			t.Errorf("LatLngToLocator(%f, %f) = %q, expected %q", tc.lat, tc.lng, got, tc.expected)
		}
	}
}

func TestLatLngToLocatorInvalid(t *testing.T) {
	for _, tc := range [][2]float64{
		{91, 120},
		{-91, 120},
		{55, -181},
		{55, 181},
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		_, err := maidenhead.LatLngToLocator(tc[0], tc[1])
		if !errors.Is(err, maidenhead.ErrInvalidCoordinate) {
			t.Fatalf("expected ErrInvalidCoordinate for %v, got %v", tc, err)
		}
		if err.Error() != "Input is not a valid coordinate" {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestLocatorRoundTrip(t *testing.T) {
	for fLng := 'A'; fLng <= 'R'; fLng++ {
		for fLat := 'A'; fLat <= 'R'; fLat++ {
			for sq := 0; sq < 100; sq++ {
				for sub := 0; sub < 24; sub += 5 {
					loc := string([]byte{
						byte(fLng), byte(fLat),
						byte('0' + sq/10), byte('0' + sq%10),
						byte('a' + sub), byte('x' - sub),
					})
					lat, lng, err := maidenhead.LocatorToLatLng(loc)
					if err != nil {
						t.Fatalf("unexpected error decoding %s: %s", loc, err)
					}
					got, err := maidenhead.LatLngToLocator(lat, lng)
					if err != nil {
						t.Fatalf("unexpected error encoding %s center: %s", loc, err)
					}
					if got != loc {
						t.Fatalf("expected %s, got %s", loc, got)
					}
				}
			}
		}
	}
}

func TestLatLngRoundTrip(t *testing.T) {
	const halfWidth = 2.5/60 + 1e-9
	const halfHeight = 1.25/60 + 1e-9
	const latInc = 0.37
	const lngInc = 0.53
	for lng := -190.0; lng < 190; lng += lngInc {
		for lat := -100.0; lat < 100; lat += latInc {
			loc, err := maidenhead.LatLngToLocator(lat, lng)
			if err != nil {
				if math.Abs(lat) <= 90 && math.Abs(lng) <= 180 {
					t.Fatalf("unexpected error at %f %f: %s", lat, lng, err)
				}
				continue
			}
			lat2, lng2, err := maidenhead.LocatorToLatLng(loc)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %f %f (%s)", lat, lng, err)
			}
			if math.Abs(lat-lat2) > halfHeight || math.Abs(lng-lng2) > halfWidth {
				t.Fatalf("expected %f %f, got %f %f (%s)", lat, lng, lat2, lng2, loc)
			}
		}
	}
}

func TestFromGeodetic(t *testing.T) {
	for _, tc := range []struct {
		geo       s2.LatLng
		precision int
		expected  string
	}{
		{s2.LatLngFromDegrees(60.179, 24.945), maidenhead.PrecisionSubsquare, "KP20le"},
		{s2.LatLngFromDegrees(60.179, 24.945), maidenhead.PrecisionSquare, "KP20"},
		{s2.LatLngFromDegrees(90, 180), maidenhead.PrecisionSubsquare, "RR99xx"},
		{s2.LatLngFromDegrees(-90, -180), maidenhead.PrecisionSquare, "AA00"},
	} {
		got, err := maidenhead.FromGeodetic(tc.geo, tc.precision)
		if err != nil {
			t.Fatalf("unexpected error converting %s: %s", tc.geo, err)
		}
		if got != tc.expected {
			t.Errorf("FromGeodetic(%s, %d) = %q, expected %q", tc.geo, tc.precision, got, tc.expected)
		}
	}

	for _, precision := range []int{0, 1, 4} {
		_, err := maidenhead.FromGeodetic(s2.LatLngFromDegrees(0, 0), precision)
		if !errors.Is(err, maidenhead.ErrInvalidPrecision) {
			t.Errorf("expected ErrInvalidPrecision for %d, got %v", precision, err)
		}
	}

	_, err := maidenhead.FromGeodetic(s2.LatLngFromDegrees(91, 0), maidenhead.PrecisionSubsquare)
	if !errors.Is(err, maidenhead.ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestToGeodetic(t *testing.T) {
	geo, err := maidenhead.ToGeodetic("KP20le")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectClose(t, "lat", geo.Lat.Degrees(), 60.188)
	expectClose(t, "lng", geo.Lng.Degrees(), 24.958)

	if _, err := maidenhead.ToGeodetic("F030ll"); !errors.Is(err, maidenhead.ErrInvalidLocator) {
		t.Errorf("expected ErrInvalidLocator, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	rect, err := maidenhead.Bounds("KP20le")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectClose(t, "south", rect.Lo().Lat.Degrees(), 60+4*2.5/60)
	expectClose(t, "west", rect.Lo().Lng.Degrees(), 24+11*5.0/60)
	expectClose(t, "north", rect.Hi().Lat.Degrees(), 60+5*2.5/60)
	expectClose(t, "east", rect.Hi().Lng.Degrees(), 25)

	rect, err = maidenhead.Bounds("FN20")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectClose(t, "height", rect.Size().Lat.Degrees(), 1)
	expectClose(t, "width", rect.Size().Lng.Degrees(), 2)

	for _, loc := range []string{"KP20le", "FN20", "AA00aa", "RR99xx", "RR73", "JJ00aa"} {
		rect, err := maidenhead.Bounds(loc)
		if err != nil {
			t.Fatalf("unexpected error for %s: %s", loc, err)
		}
		center, _ := maidenhead.ToGeodetic(loc)
		if !rect.ContainsLatLng(center) {
			t.Errorf("expected %s bounds %v to contain its center %s", loc, rect, center)
		}
	}

	rect, _ = maidenhead.Bounds("AA00aa")
	expectClose(t, "AA00aa width", rect.Size().Lng.Degrees(), 5.0/60)

	if _, err := maidenhead.Bounds("RZ73"); !errors.Is(err, maidenhead.ErrInvalidLocator) {
		t.Errorf("expected ErrInvalidLocator, got %v", err)
	}
}

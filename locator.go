// Package maidenhead converts between Maidenhead grid locators and geodetic
// coordinates, and computes great-circle distance and initial bearing
// between locators on a spherical Earth.
package maidenhead

import "errors"

// ErrInvalidLocator is returned for a string that is not a 4 or 6 character
// Maidenhead locator.
var ErrInvalidLocator = errors.New("Input is not valid locator string")

// ErrInvalidCoordinate is returned when a latitude or longitude is out of
// range or not a number.
var ErrInvalidCoordinate = errors.New("Input is not a valid coordinate")

// ErrInvalidPrecision is returned when an encoding precision is neither
// PrecisionSquare nor PrecisionSubsquare.
var ErrInvalidPrecision = errors.New("precision out of range")

// Precision is counted in character pairs.
const (
	PrecisionSquare    = 2 // field + square, e.g. "KP20"
	PrecisionSubsquare = 3 // field + square + subsquare, e.g. "KP20le"
)

const fieldCount = 18     // A-R
const squareCount = 10    // 0-9
const subsquareCount = 24 // A-X

const fieldWidth = 20.0  // degrees of longitude
const fieldHeight = 10.0 // degrees of latitude
const squareWidth = 2.0
const squareHeight = 1.0
const subsquareWidth = squareWidth / subsquareCount   // 5'
const subsquareHeight = squareHeight / subsquareCount // 2.5'

// A 4 character locator is placed at the center of its "ll" subsquare.
const squareCenterSubsquare = 11

// cellsPerAxis is the number of subsquares spanning the globe on either axis.
const cellsPerAxis = fieldCount * squareCount * subsquareCount

// tiers holds the indices extracted from a locator string.
type tiers struct {
	fieldLng, fieldLat         int
	squareLng, squareLat       int
	subsquareLng, subsquareLat int
	precision                  int
}

// IsValidLocatorString reports whether s is a 4 or 6 character Maidenhead
// locator. Letters are matched case-insensitively.
func IsValidLocatorString(s string) bool {
	_, err := breakLocatorString(s)
	return err == nil
}

// Normalize returns the locator with uppercase field letters and lowercase
// subsquare letters.
func Normalize(locator string) (string, error) {
	t, err := breakLocatorString(locator)
	if err != nil {
		return "", err
	}
	return makeLocatorString(t), nil
}

// breakLocatorString validates a locator and splits it into its tier
// indices. Everything downstream trusts the result.
func breakLocatorString(s string) (tiers, error) {
	if len(s) != 4 && len(s) != 6 {
		return tiers{}, ErrInvalidLocator
	}

	var t tiers
	var ok [6]bool
	t.fieldLng, ok[0] = letterIndex(s[0], fieldCount)
	t.fieldLat, ok[1] = letterIndex(s[1], fieldCount)
	t.squareLng, ok[2] = digitIndex(s[2])
	t.squareLat, ok[3] = digitIndex(s[3])

	if len(s) == 4 {
		t.subsquareLng = squareCenterSubsquare
		t.subsquareLat = squareCenterSubsquare
		t.precision = PrecisionSquare
		ok[4], ok[5] = true, true
	} else {
		t.subsquareLng, ok[4] = letterIndex(s[4], subsquareCount)
		t.subsquareLat, ok[5] = letterIndex(s[5], subsquareCount)
		t.precision = PrecisionSubsquare
	}

	for _, v := range ok {
		if !v {
			return tiers{}, ErrInvalidLocator
		}
	}
	return t, nil
}

// makeLocatorString renders the tiers in canonical casing, truncated to
// t.precision pairs.
func makeLocatorString(t tiers) string {
	buf := [6]byte{
		byte('A' + t.fieldLng),
		byte('A' + t.fieldLat),
		byte('0' + t.squareLng),
		byte('0' + t.squareLat),
		byte('a' + t.subsquareLng),
		byte('a' + t.subsquareLat),
	}
	return string(buf[:2*t.precision])
}

func letterIndex(b byte, count int) (int, bool) {
	if !isalpha(b) {
		return 0, false
	}
	i := int(toupper(b) - 'A')
	return i, i < count
}

func digitIndex(b byte) (int, bool) {
	if !isdigit(b) {
		return 0, false
	}
	return int(b - '0'), true
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isalpha(r byte) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func toupper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

package maidenhead

import "fmt"

// MeanEarthRadius is the mean radius of the Earth in kilometers.
const MeanEarthRadius = 6371.0

// DefaultSphere is a mean Earth radius sphere used by Distance and
// BearingDistance.
var DefaultSphere *Sphere

func init() {
	var err error
	DefaultSphere, err = NewSphere(MeanEarthRadius)
	if err != nil {
		panic(fmt.Sprintf("error constructing mean Earth sphere: %s", err))
	}
}

// Distance returns the great-circle distance in kilometers between the
// centers of two locators on DefaultSphere.
func Distance(locatorA, locatorB string) (float64, error) {
	return DefaultSphere.Distance(locatorA, locatorB)
}

// BearingDistance returns the distance and initial bearing between the
// centers of two locators on DefaultSphere.
func BearingDistance(locatorA, locatorB string) (Path, error) {
	return DefaultSphere.BearingDistance(locatorA, locatorB)
}

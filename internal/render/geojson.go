package render

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry is a GeoJSON Point or Polygon.
type Geometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// PointFeature returns a Point feature at lat, lng. GeoJSON positions are
// [lng, lat].
func PointFeature(lat, lng float64, properties map[string]interface{}) Feature {
	return Feature{
		Type:       "Feature",
		Properties: properties,
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
	}
}

// BoxFeature returns a closed Polygon feature for the rectangle between the
// south west and north east corners.
func BoxFeature(south, west, north, east float64, properties map[string]interface{}) Feature {
	ring := [][]float64{
		{west, south},
		{east, south},
		{east, north},
		{west, north},
		{west, south},
	}
	return Feature{
		Type:       "Feature",
		Properties: properties,
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
		},
	}
}

// Collect wraps features into a FeatureCollection.
func Collect(features ...Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// Package render writes command results as text, JSON, YAML or GeoJSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	GeoJSON Format = "geojson"
)

// ErrNoGeometry is returned when GeoJSON is requested for a value that has
// no geographic features.
var ErrNoGeometry = errors.New("value has no geometry")

// ErrUnknownFormat is returned for a Format not listed above.
var ErrUnknownFormat = errors.New("unknown output format")

// Featurer is implemented by results that can be drawn on a map.
type Featurer interface {
	Features() []Feature
}

// Write encodes v to w. Text uses v's String method when it has one.
func Write(w io.Writer, format Format, v interface{}) error {
	switch format {
	case Text, "":
		if s, ok := v.(fmt.Stringer); ok {
			_, err := io.WriteString(w, s.String())
			return err
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case JSON:
		return writeJSON(w, v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case GeoJSON:
		f, ok := v.(Featurer)
		if !ok {
			return ErrNoGeometry
		}
		return writeJSON(w, Collect(f.Features()...))
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

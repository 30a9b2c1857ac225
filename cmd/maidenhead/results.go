package main

import (
	"fmt"
	"strings"

	"github.com/tzneal/maidenhead"
	"github.com/tzneal/maidenhead/internal/render"
)

// cell is a decoded locator with its center and bounds in degrees.
type cell struct {
	Locator string  `json:"locator" yaml:"locator"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	South   float64 `json:"south" yaml:"south"`
	West    float64 `json:"west" yaml:"west"`
	North   float64 `json:"north" yaml:"north"`
	East    float64 `json:"east" yaml:"east"`
}

func decodeCell(locator string) (cell, error) {
	canonical, err := maidenhead.Normalize(locator)
	if err != nil {
		return cell{}, err
	}
	lat, lng, err := maidenhead.LocatorToLatLng(canonical)
	if err != nil {
		return cell{}, err
	}
	rect, err := maidenhead.Bounds(canonical)
	if err != nil {
		return cell{}, err
	}
	// the western edge of an "A" field normalizes to +180 in s1 intervals
	west := rect.Lo().Lng.Degrees()
	if west > lng {
		west -= 360
	}
	return cell{
		Locator: canonical,
		Lat:     lat,
		Lng:     lng,
		South:   rect.Lo().Lat.Degrees(),
		West:    west,
		North:   rect.Hi().Lat.Degrees(),
		East:    rect.Hi().Lng.Degrees(),
	}, nil
}

type cells []cell

func (c cells) String() string {
	var sb strings.Builder
	for _, v := range c {
		fmt.Fprintf(&sb, "%s\t%.6f\t%.6f\n", v.Locator, v.Lat, v.Lng)
	}
	return sb.String()
}

func (c cells) Features() []render.Feature {
	features := make([]render.Feature, 0, 2*len(c))
	for _, v := range c {
		props := map[string]interface{}{"locator": v.Locator}
		features = append(features,
			render.PointFeature(v.Lat, v.Lng, props),
			render.BoxFeature(v.South, v.West, v.North, v.East, props))
	}
	return features
}

// path is the great-circle path between two decoded locators.
type path struct {
	From            cell `json:"from" yaml:"from"`
	To              cell `json:"to" yaml:"to"`
	maidenhead.Path `yaml:",inline"`
}

func (p path) String() string {
	return fmt.Sprintf("%s -> %s: %.2f km, %.2f deg\n", p.From.Locator, p.To.Locator, p.Km, p.Deg)
}

func (p path) Features() []render.Feature {
	return []render.Feature{
		render.PointFeature(p.From.Lat, p.From.Lng, map[string]interface{}{"locator": p.From.Locator, "role": "from"}),
		render.PointFeature(p.To.Lat, p.To.Lng, map[string]interface{}{
			"locator": p.To.Locator,
			"role":    "to",
			"km":      p.Km,
			"deg":     p.Deg,
		}),
	}
}

type distanceOnly struct {
	From  string  `json:"from" yaml:"from"`
	To    string  `json:"to" yaml:"to"`
	Km    float64 `json:"km" yaml:"km"`
	cells cells
}

func (d distanceOnly) String() string {
	return fmt.Sprintf("%.2f\n", d.Km)
}

func (d distanceOnly) Features() []render.Feature {
	return d.cells.Features()
}

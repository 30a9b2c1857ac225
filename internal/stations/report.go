package stations

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/tzneal/maidenhead"
	"github.com/tzneal/maidenhead/internal/render"
)

// Entry is one station with its position and the path to it from home.
type Entry struct {
	Station         `yaml:",inline"`
	Lat             float64 `json:"lat" yaml:"lat"`
	Lng             float64 `json:"lng" yaml:"lng"`
	maidenhead.Path `yaml:",inline"`
}

// Report lists the path from a home locator to each station.
type Report struct {
	Home    string  `json:"home" yaml:"home"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	Entries []Entry `json:"stations" yaml:"stations"`
}

// Build computes a Report on sphere. An explicit home overrides f.Home.
func Build(sphere *maidenhead.Sphere, f *File, home string) (*Report, error) {
	if home == "" {
		home = f.Home
	}
	if home == "" {
		return nil, ErrNoHome
	}

	canonical, err := maidenhead.Normalize(home)
	if err != nil {
		return nil, fmt.Errorf("home %q: %w", home, err)
	}
	from, err := maidenhead.ToGeodetic(canonical)
	if err != nil {
		return nil, fmt.Errorf("home %q: %w", home, err)
	}

	r := &Report{
		Home:    canonical,
		Lat:     from.Lat.Degrees(),
		Lng:     from.Lng.Degrees(),
		Entries: make([]Entry, 0, len(f.Stations)),
	}
	for _, s := range f.Stations {
		to, err := maidenhead.ToGeodetic(s.Locator)
		if err != nil {
			return nil, fmt.Errorf("station %s %q: %w", s.Call, s.Locator, err)
		}
		s.Locator, _ = maidenhead.Normalize(s.Locator)
		r.Entries = append(r.Entries, Entry{
			Station: s,
			Lat:     to.Lat.Degrees(),
			Lng:     to.Lng.Degrees(),
			Path:    sphere.GreatCircle(from, to),
		})
	}
	return r, nil
}

// SortByDistance orders the entries nearest first.
func (r *Report) SortByDistance() {
	sort.SliceStable(r.Entries, func(i, j int) bool {
		return r.Entries[i].Km < r.Entries[j].Km
	})
}

// String renders the report as an aligned table.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "home %s (%.4f, %.4f)\n", r.Home, r.Lat, r.Lng)
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CALL\tLOCATOR\tKM\tDEG\t")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t\n", e.Call, e.Locator, e.Km, e.Deg)
	}
	tw.Flush()
	return sb.String()
}

// Features returns the home point and a point per station.
func (r *Report) Features() []render.Feature {
	features := make([]render.Feature, 0, len(r.Entries)+1)
	features = append(features, render.PointFeature(r.Lat, r.Lng, map[string]interface{}{
		"locator": r.Home,
		"home":    true,
	}))
	for _, e := range r.Entries {
		props := map[string]interface{}{
			"call":    e.Call,
			"locator": e.Locator,
			"km":      e.Km,
			"deg":     e.Deg,
		}
		if e.Note != "" {
			props["note"] = e.Note
		}
		features = append(features, render.PointFeature(e.Lat, e.Lng, props))
	}
	return features
}

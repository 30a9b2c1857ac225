// Package stations loads station lists and computes the path from a home
// locator to each station.
package stations

import (
	"errors"
	"fmt"
	"os"

	"github.com/tzneal/maidenhead"

	"gopkg.in/yaml.v3"
)

// ErrNoHome is returned when neither the file nor the caller names a home
// locator.
var ErrNoHome = errors.New("no home locator")

// File is the station list file structure.
type File struct {
	Home     string    `yaml:"home,omitempty"`
	Stations []Station `yaml:"stations"`
}

// Station is a named remote station.
type Station struct {
	Call    string `yaml:"call" json:"call"`
	Locator string `yaml:"locator" json:"locator"`
	Note    string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Load reads and parses the YAML station file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a YAML station list and validates every locator in it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the home locator, if set, and every station locator.
func (f *File) Validate() error {
	if f.Home != "" && !maidenhead.IsValidLocatorString(f.Home) {
		return fmt.Errorf("home %q: %w", f.Home, maidenhead.ErrInvalidLocator)
	}
	for i, s := range f.Stations {
		if !maidenhead.IsValidLocatorString(s.Locator) {
			return fmt.Errorf("station %d (%s) %q: %w", i+1, s.Call, s.Locator, maidenhead.ErrInvalidLocator)
		}
	}
	return nil
}

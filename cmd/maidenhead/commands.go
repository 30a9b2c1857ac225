package main

import (
	"fmt"

	"github.com/tzneal/maidenhead"
	"github.com/tzneal/maidenhead/internal/stations"

	"github.com/golang/geo/s2"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type decodeCommand struct {
	Args struct {
		Locators []string `positional-arg-name:"LOCATOR" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

type encodeCommand struct {
	Lat       float64 `short:"a" long:"lat" description:"Latitude in degrees, negative for south (use --lat=-33.9)" required:"true"`
	Lng       float64 `short:"n" long:"lng" description:"Longitude in degrees, negative for west (use --lng=-72.7)" required:"true"`
	Precision int     `short:"p" long:"precision" description:"Character pairs" choice:"2" choice:"3" default:"3"`
}

type pairArgs struct {
	From string `positional-arg-name:"FROM"`
	To   string `positional-arg-name:"TO"`
}

type distanceCommand struct {
	Args pairArgs `positional-args:"yes" required:"yes"`
}

type bearingCommand struct {
	Args pairArgs `positional-args:"yes" required:"yes"`
}

type stationsCommand struct {
	File string `short:"f" long:"file" env:"STATIONS_FILE" description:"Path to station list file" default:"stations.yaml"`
	Home string `long:"home" env:"HOME_LOCATOR" description:"Home locator, overrides the file"`
	Sort bool   `short:"s" long:"sort" description:"Sort stations nearest first"`
}

func addCommands(parser *flags.Parser) {
	for _, c := range []struct {
		name, short, long string
		data              interface{}
	}{
		{"decode", "Locator to coordinates", "Print the center and bounds of each locator cell", &decodeCommand{}},
		{"encode", "Coordinates to locator", "Print the locator containing a latitude and longitude", &encodeCommand{}},
		{"distance", "Distance between locators", "Print the great-circle distance in kilometers", &distanceCommand{}},
		{"bearing", "Bearing and distance", "Print the initial bearing and distance from FROM to TO", &bearingCommand{}},
		{"stations", "Station list report", "Print bearing and distance from home to every station in a YAML file", &stationsCommand{}},
	} {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(fmt.Sprintf("error registering command %s: %s", c.name, err))
		}
	}
}

func (c *decodeCommand) Execute([]string) error {
	var result cells
	for _, loc := range c.Args.Locators {
		cell, err := decodeCell(loc)
		if err != nil {
			return fmt.Errorf("decode %q: %w", loc, err)
		}
		log.Debug().Str("locator", cell.Locator).Float64("lat", cell.Lat).Float64("lng", cell.Lng).Msg("Decoded locator")
		result = append(result, cell)
	}
	return write(result)
}

func (c *encodeCommand) Execute([]string) error {
	loc, err := maidenhead.FromGeodetic(s2.LatLngFromDegrees(c.Lat, c.Lng), c.Precision)
	if err != nil {
		return fmt.Errorf("encode %g, %g: %w", c.Lat, c.Lng, err)
	}
	cell, err := decodeCell(loc)
	if err != nil {
		return err
	}
	log.Debug().Float64("lat", c.Lat).Float64("lng", c.Lng).Str("locator", loc).Msg("Encoded coordinates")
	return write(cells{cell})
}

func (c *distanceCommand) Execute([]string) error {
	p, err := computePath(c.Args)
	if err != nil {
		return err
	}
	return write(distanceOnly{From: p.From.Locator, To: p.To.Locator, Km: p.Km, cells: cells{p.From, p.To}})
}

func (c *bearingCommand) Execute([]string) error {
	p, err := computePath(c.Args)
	if err != nil {
		return err
	}
	return write(p)
}

func (c *stationsCommand) Execute([]string) error {
	f, err := stations.Load(c.File)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.File, err)
	}
	s, err := sphere()
	if err != nil {
		return err
	}
	r, err := stations.Build(s, f, c.Home)
	if err != nil {
		return err
	}
	if c.Sort {
		r.SortByDistance()
	}
	log.Info().
		Str("file", c.File).
		Str("home", r.Home).
		Int("stations", len(r.Entries)).
		Msg("Station report built")
	return write(r)
}

func computePath(args pairArgs) (path, error) {
	s, err := sphere()
	if err != nil {
		return path{}, err
	}
	from, err := decodeCell(args.From)
	if err != nil {
		return path{}, fmt.Errorf("from %q: %w", args.From, err)
	}
	to, err := decodeCell(args.To)
	if err != nil {
		return path{}, fmt.Errorf("to %q: %w", args.To, err)
	}
	p := path{
		From: from,
		To:   to,
		Path: s.GreatCircle(s2.LatLngFromDegrees(from.Lat, from.Lng), s2.LatLngFromDegrees(to.Lat, to.Lng)),
	}
	log.Debug().Str("from", from.Locator).Str("to", to.Locator).Float64("km", p.Km).Float64("deg", p.Deg).Msg("Computed path")
	return p, nil
}

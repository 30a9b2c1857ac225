package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tzneal/maidenhead"
	"github.com/tzneal/maidenhead/internal/logger"
	"github.com/tzneal/maidenhead/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Output string  `short:"o" long:"output" env:"OUTPUT_FORMAT" description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"geojson" default:"text"`
	Radius float64 `short:"r" long:"radius" env:"EARTH_RADIUS"  description:"Sphere radius in kilometers" default:"6371"`
}

var opts Options

func main() {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}
	addCommands(parser)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, flagsErr.Message)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, flagsErr.Message)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func sphere() (*maidenhead.Sphere, error) {
	s, err := maidenhead.NewSphere(opts.Radius)
	if err != nil {
		return nil, fmt.Errorf("radius %g: %w", opts.Radius, err)
	}
	return s, nil
}

func write(v interface{}) error {
	return render.Write(os.Stdout, render.Format(opts.Output), v)
}

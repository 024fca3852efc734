// Package config parses the viewer's command line.
package config

import (
	"flag"
	"fmt"
	"io"

	"quatview/internal/mesh"
	"quatview/internal/scene"
)

// Config controls one run of the viewer.
type Config struct {
	Width, Height int
	Rate          float64 // spin speed, radians per second
	Angle         float64 // starting angle, radians
	Shape         string
	Size          float64
	VSync         bool
	Report        bool
	Snapshot      string // write a PNG instead of opening a window
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:  1360,
		Height: 700,
		Rate:   scene.DefaultRate,
		Shape:  "cube",
		Size:   6,
		VSync:  true,
		Report: true,
	}
}

// Parse reads flags from args (without the program name). Usage and
// errors go to output.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("quatview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	fs.Float64Var(&cfg.Rate, "rate", cfg.Rate, "Rotation speed in radians per second")
	fs.Float64Var(&cfg.Angle, "angle", cfg.Angle, "Starting rotation angle in radians")
	fs.StringVar(&cfg.Shape, "shape", cfg.Shape, "Wire object: cube or sphere")
	fs.Float64Var(&cfg.Size, "size", cfg.Size, "Object size")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Wait for vertical sync")
	fs.BoolVar(&cfg.Report, "report", cfg.Report, "Print the quaternion self-check on startup")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "Render one frame to this PNG file and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if !mesh.HasShape(c.Shape) {
		return fmt.Errorf("unknown shape %q", c.Shape)
	}
	if c.Size <= 0 {
		return fmt.Errorf("invalid object size %v", c.Size)
	}
	return nil
}

// Package config holds the run configuration shared by the simulator
// binaries. Values come from defaults, an optional YAML file and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rlelife/pkg/core"
	"rlelife/pkg/rule"
)

// Run describes one simulation run.
type Run struct {
	MinRows     int    `yaml:"min_rows"`
	MinCols     int    `yaml:"min_cols"`
	Generations int    `yaml:"generations"`
	Rule        string `yaml:"rule"`
	FillPercent int    `yaml:"fill_percent"`
	Seed        int64  `yaml:"seed"`
	Workers     int    `yaml:"workers"`

	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	SaveInitial string `yaml:"save_initial"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	FPS   int `yaml:"fps"`
	Scale int `yaml:"scale"`
}

// Default returns a Run populated with sensible defaults. Rule is left empty
// so a decoded pattern's own rule applies unless one is given explicitly.
func Default() Run {
	return Run{
		MinRows:     64,
		MinCols:     64,
		Generations: 100,
		FillPercent: 30,
		Seed:        42,
		Workers:     1,
		LogLevel:    "info",
		LogFormat:   "text",
		FPS:         10,
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet, using the current
// values as flag defaults.
func (c *Run) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.MinRows, "rows", c.MinRows, "minimum grid height in cells")
	fs.IntVar(&c.MinCols, "cols", c.MinCols, "minimum grid width in cells")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to simulate")
	fs.StringVar(&c.Rule, "rule", c.Rule, "B/S rule or preset name (default: the pattern's rule, else B3/S23)")
	fs.IntVar(&c.FillPercent, "fill", c.FillPercent, "percent of live cells in a random grid (0-100)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row workers per generation")
	fs.StringVar(&c.Input, "in", c.Input, "RLE pattern to start from instead of a random grid")
	fs.StringVar(&c.Output, "out", c.Output, "file for the final generation's RLE (default stdout)")
	fs.StringVar(&c.SaveInitial, "save-initial", c.SaveInitial, "file for the initial generation's RLE")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second in the viewer")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the viewer")
}

// Load overlays the YAML document read from r onto c. Unknown keys are an
// error; an empty document leaves c unchanged.
func (c *Run) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	return nil
}

// LoadFile is like Load but reads the named file.
func (c *Run) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening configuration: %w", err)
	}
	defer f.Close()
	if err := c.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate checks every field against its allowed range and returns a
// *core.ValidationError for the first violation.
func (c *Run) Validate() error {
	switch {
	case c.MinRows < 1:
		return invalid("min_rows", "%d is below 1", c.MinRows)
	case c.MinCols < 1:
		return invalid("min_cols", "%d is below 1", c.MinCols)
	case c.Generations < 0:
		return invalid("generations", "%d is negative", c.Generations)
	case c.FillPercent < 0 || c.FillPercent > 100:
		return invalid("fill_percent", "%d is outside 0..100", c.FillPercent)
	case c.Workers < 1:
		return invalid("workers", "%d is below 1", c.Workers)
	case c.FPS < 1:
		return invalid("fps", "%d is below 1", c.FPS)
	case c.Scale < 1:
		return invalid("scale", "%d is below 1", c.Scale)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log_level", "%q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return invalid("log_format", "%q is not one of text, json", c.LogFormat)
	}
	if c.Rule != "" {
		if _, err := rule.Lookup(c.Rule); err != nil {
			return invalid("rule", "%q is neither a preset nor a B/S rule", c.Rule)
		}
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return &core.ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

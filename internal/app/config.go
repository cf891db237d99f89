package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"lifegrid/pkg/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern  string        `json:"pattern"`
	Scale    int           `json:"scale"`
	TPS      int           `json:"tps"`
	Period   time.Duration `json:"step_period"`
	Density  float64       `json:"density"`
	Seed     int64         `json:"seed"`
	ViewW    int           `json:"view_width"`
	ViewH    int           `json:"view_height"`
	HUDWidth int           `json:"hud_width"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:  "glider-gun",
		Scale:    8,
		TPS:      60,
		Period:   life.DefaultStepPeriod,
		Density:  0.18,
		Seed:     42,
		ViewW:    960,
		ViewH:    640,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "catalog pattern stamped at the origin on startup, empty for none")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ui ticks per second")
	fs.DurationVar(&c.Period, "period", c.Period, "interval between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "random soup fill density")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for deterministic soups")
	fs.IntVar(&c.ViewW, "width", c.ViewW, "board view width in pixels")
	fs.IntVar(&c.ViewH, "height", c.ViewH, "board view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "hud panel width in pixels, 0 hides it")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// Load applies the JSON config file named by the -config flag, if any, then
// re-applies flags set explicitly on the command line so those win over
// file values.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return errors.Wrapf(err, "[Load] read config file %s", c.File)
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return errors.Wrapf(err, "[Load] parse config file %s", c.File)
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Load] reapply flag -%s", name)
		}
	}
	return nil
}

package config

import (
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/marek-sk/orbitsim/internal/body"
)

const (
	// DefaultDt is one simulated hour per tick; orbital periods become
	// visible at render rate without tying physics to wall-clock time.
	DefaultDt = 3600.0
	// DefaultScale renders one astronomical unit as 250 px.
	DefaultScale  = 250.0 / 1.496e11
	DefaultFPS    = 60
	DefaultWidth  = 800
	DefaultHeight = 800
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BodyConfig is one startup body definition. Position in meters,
// velocity in m/s, radius in display pixels, color as "#rrggbb".
type BodyConfig struct {
	Name   string  `yaml:"name"`
	Mass   float64 `yaml:"mass"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
	Anchor bool    `yaml:"anchor"`
}

type Config struct {
	Window    WindowConfig `yaml:"window"`
	Dt        float64      `yaml:"dt"`
	FPS       int          `yaml:"fps"`
	Speed     int          `yaml:"speed"`
	Scale     float64      `yaml:"scale"`
	Softening float64      `yaml:"softening"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// DefaultConfig is the Sun-Earth-Moon system: the Sun anchored at the
// origin, Earth one AU out on the negative x axis with its mean
// orbital speed, and the Moon a lunar distance beyond Earth carrying
// Earth's velocity plus its own.
func DefaultConfig() *Config {
	return GetPreset("sun-earth-moon")
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Registry materializes the configured bodies, in order, and
// validates the result (positive masses, distinct positions).
func (c *Config) Registry() (*body.Registry, error) {
	if len(c.Bodies) == 0 {
		return nil, fmt.Errorf("no bodies configured")
	}

	reg := body.NewRegistry()
	for _, bc := range c.Bodies {
		col, err := parseColor(bc.Color)
		if err != nil {
			return nil, fmt.Errorf("body %q: bad color %q: %w", bc.Name, bc.Color, err)
		}
		reg.Add(&body.Body{
			Name:         bc.Name,
			Mass:         bc.Mass,
			Pos:          body.Vec{X: bc.X, Y: bc.Y},
			Vel:          body.Vec{X: bc.VX, Y: bc.VY},
			RenderRadius: bc.Radius,
			Color:        col,
			Anchor:       bc.Anchor,
		})
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

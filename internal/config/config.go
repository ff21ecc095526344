package config

import (
	"fmt"
	"os"

	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/query"
	"gopkg.in/yaml.v3"
)

const (
	DefaultData     = "films.json"
	DefaultTheme    = "marquee"
	DefaultView     = "grid"
	DefaultPxPerDot = 4.0
	DefaultFPS      = 60
)

type Config struct {
	Data     string       `yaml:"data"`
	Theme    string       `yaml:"theme"`
	View     string       `yaml:"view"`
	Sort     string       `yaml:"sort"`
	LogFile  string       `yaml:"log_file"`
	// PxPerDot is the closest zoom; the bubble view zooms out further when
	// the catalog would not fit.
	PxPerDot float64      `yaml:"px_per_dot"`
	FPS      int          `yaml:"fps"`
	Seed     int64        `yaml:"seed"`
	Layout   LayoutConfig `yaml:"layout"`
	Chart    ChartConfig  `yaml:"chart"`
}

type LayoutConfig struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	Padding       float64 `yaml:"padding"`
	Strength      float64 `yaml:"strength"`
	Separation    float64 `yaml:"separation"`
	Damping       float64 `yaml:"damping"`
	Bounce        float64 `yaml:"bounce"`
	Threshold     float64 `yaml:"threshold"`
	MaxIterations int     `yaml:"max_iterations"`
}

type ChartConfig struct {
	MinWidth int    `yaml:"min_width"`
	BarWidth int    `yaml:"bar_width"`
	Height   int    `yaml:"height"`
	LabelMax int    `yaml:"label_max"`
	Color    string `yaml:"color"`
}

func DefaultConfig() *Config {
	p := layout.DefaultParams()
	c := chart.DefaultConfig()
	return &Config{
		Data:     DefaultData,
		Theme:    DefaultTheme,
		View:     DefaultView,
		Sort:     string(query.SortNone),
		PxPerDot: DefaultPxPerDot,
		FPS:      DefaultFPS,
		Layout: LayoutConfig{
			MinSize:       p.MinSize,
			MaxSize:       p.MaxSize,
			Padding:       p.Padding,
			Strength:      p.Strength,
			Separation:    p.Separation,
			Damping:       p.Damping,
			Bounce:        p.Bounce,
			Threshold:     p.Threshold,
			MaxIterations: p.MaxIterations,
		},
		Chart: ChartConfig{
			MinWidth: c.MinWidth,
			BarWidth: c.BarWidth,
			Height:   c.Height,
			LabelMax: c.LabelMax,
			Color:    c.Color,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
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

// Validate checks the values that cannot be repaired at use time.
func (c *Config) Validate() error {
	if _, err := query.ParseSortKey(c.Sort); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.PxPerDot <= 0 {
		return fmt.Errorf("px_per_dot must be positive, got %f", c.PxPerDot)
	}
	return c.LayoutParams().Validate()
}

// LayoutParams overlays the configured tuning on the default parameters.
func (c *Config) LayoutParams() layout.Params {
	p := layout.DefaultParams()
	p.MinSize = c.Layout.MinSize
	p.MaxSize = c.Layout.MaxSize
	p.Padding = c.Layout.Padding
	p.Strength = c.Layout.Strength
	p.Separation = c.Layout.Separation
	p.Damping = c.Layout.Damping
	p.Bounce = c.Layout.Bounce
	p.Threshold = c.Layout.Threshold
	p.MaxIterations = c.Layout.MaxIterations
	return p
}

func (c *Config) ChartConfig() chart.Config {
	return chart.Config{
		MinWidth: c.Chart.MinWidth,
		BarWidth: c.Chart.BarWidth,
		Height:   c.Chart.Height,
		LabelMax: c.Chart.LabelMax,
		Color:    c.Chart.Color,
	}
}

package config

import (
	"fmt"
	"sort"
)

// Presets are named layout tunings.
var Presets = map[string]*LayoutConfig{
	"compact": {
		MinSize: 24, MaxSize: 90, Padding: 20,
		Strength: 0.05, Separation: 2, Damping: 0.9, Bounce: 0.5,
		Threshold: 0.01, MaxIterations: 5000,
	},
	"spacious": {
		MinSize: 40, MaxSize: 150, Padding: 60,
		Strength: 0.08, Separation: 15, Damping: 0.9, Bounce: 0.5,
		Threshold: 0.01, MaxIterations: 8000,
	},
	"bouncy": {
		MinSize: 40, MaxSize: 150, Padding: 50,
		Strength: 0.1, Separation: 5, Damping: 0.97, Bounce: 0.9,
		Threshold: 0.01, MaxIterations: 5000,
	},
}

func GetPreset(name string) *LayoutConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the layout tuning with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset %q (available: %v)", name, ListPresets())
	}
	c.Layout = *p
	return nil
}

package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/folio/config"
)

// slider binds one field parameter to a slider.
type slider struct {
	label    string
	min, max float32
	format   string
	value    func(c *config.FieldConfig) *float64
	reseed   bool // Density changes need a fresh particle set
}

var sliders = []slider{
	{"Density area (px² per particle)", 2000, 40000, "%.0f", func(c *config.FieldConfig) *float64 { return &c.DensityArea }, true},
	{"Link distance", 20, 300, "%.0f", func(c *config.FieldConfig) *float64 { return &c.LinkDistance }, false},
	{"Repel radius", 0, 400, "%.0f", func(c *config.FieldConfig) *float64 { return &c.RepelRadius }, false},
	{"Repel strength", 0, 2, "%.2f", func(c *config.FieldConfig) *float64 { return &c.RepelStrength }, false},
	{"Forward accel", 0, 0.02, "%.4f", func(c *config.FieldConfig) *float64 { return &c.ForwardAccel }, false},
	{"Oscillation", 0, 0.02, "%.4f", func(c *config.FieldConfig) *float64 { return &c.Oscillation }, false},
	{"Damping (near)", 0.9, 1, "%.3f", func(c *config.FieldConfig) *float64 { return &c.DampNear }, false},
	{"Damping (far)", 0.9, 1, "%.3f", func(c *config.FieldConfig) *float64 { return &c.DampFar }, false},
	{"Max vx", 0.1, 4, "%.2f", func(c *config.FieldConfig) *float64 { return &c.MaxVX }, false},
	{"Max vy", 0.1, 2, "%.2f", func(c *config.FieldConfig) *float64 { return &c.MaxVY }, false},
}

// fieldYAML renders the field section for pasting into a config file.
func fieldYAML(c config.FieldConfig) (string, error) {
	out, err := yaml.Marshal(struct {
		Field config.FieldConfig `yaml:"field"`
	}{c})
	if err != nil {
		return "", fmt.Errorf("marshaling field config: %w", err)
	}
	return string(out), nil
}

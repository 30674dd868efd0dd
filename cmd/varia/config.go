package main

import (
	"os"
	"sort"

	"github.com/katalvlaran/varia/quantum"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPoints = 48
	DefaultCount  = 4
	DefaultPlot   = 2
)

// Config describes one spectrum run. Flags override preset and file
// values, in that order.
type Config struct {
	Points    int     `yaml:"points"`
	HBar      float64 `yaml:"hbar"`
	Count     int     `yaml:"count"`
	XMin      float64 `yaml:"xmin"`
	XMax      float64 `yaml:"xmax"`
	Potential string  `yaml:"potential"`
	Plot      int     `yaml:"plot"`
}

// DefaultConfig is the harmonic oscillator on [-4, 4].
func DefaultConfig() *Config {
	return &Config{
		Points:    DefaultPoints,
		HBar:      quantum.DefaultHBar,
		Count:     DefaultCount,
		XMin:      -4,
		XMax:      4,
		Potential: "harmonic",
		Plot:      DefaultPlot,
	}
}

// LoadConfig reads a yaml file over the defaults, so absent keys keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes cfg as yaml.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// presets mirror common textbook setups.
var presets = map[string]*Config{
	"well": {
		Points: 48, HBar: 0.1, Count: 3,
		XMin: 0, XMax: 1, Potential: "well", Plot: 2,
	},
	"harmonic": {
		Points: 64, HBar: 0.1, Count: 4,
		XMin: -4, XMax: 4, Potential: "harmonic", Plot: 2,
	},
	"doublewell": {
		Points: 64, HBar: 0.05, Count: 4,
		XMin: -2, XMax: 2, Potential: "doublewell", Plot: 2,
	},
}

// getPreset returns a copy so flag overrides never touch the table.
func getPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p

	return &c
}

// listPresets returns the preset names, sorted.
func listPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

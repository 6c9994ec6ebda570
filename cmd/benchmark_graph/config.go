package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type graphConfig struct {
	Name           string  `yaml:"name"`           // friendly name for the test, should be unique
	Width          int     `yaml:"width"`          // width of dependency graph to construct
	TotalLayers    int     `yaml:"totalLayers"`    // depth of dependency graph to construct
	StaticFraction float64 `yaml:"staticFraction"` // fraction of nodes that are static
	NSources       int     `yaml:"nSources"`       // construct a graph with number of sources in each node
	ReadFraction   float64 `yaml:"readFraction"`   // fraction of [0, 1] elements in the last layer from which to read values in each test iteration
	Iterations     int64   `yaml:"iterations"`     // number of test iterations
}

var defaultConfigs = []graphConfig{
	{Name: "simple component", Width: 10, TotalLayers: 5, StaticFraction: 1, NSources: 2, ReadFraction: 0.2, Iterations: 600_000},
	{Name: "dynamic component", Width: 10, TotalLayers: 10, StaticFraction: 0.75, NSources: 6, ReadFraction: 0.2, Iterations: 15_000},
	{Name: "large web app", Width: 1_000, TotalLayers: 12, StaticFraction: 0.95, NSources: 4, ReadFraction: 1, Iterations: 7_000},
	{Name: "wide dense", Width: 1_000, TotalLayers: 5, StaticFraction: 1, NSources: 25, ReadFraction: 1, Iterations: 3_000},
	{Name: "deep", Width: 5, TotalLayers: 500, StaticFraction: 1, NSources: 3, ReadFraction: 1, Iterations: 500},
	{Name: "very dynamic", Width: 100, TotalLayers: 15, StaticFraction: 0.5, NSources: 6, ReadFraction: 1, Iterations: 2_000},
}

func loadConfigs(path string) ([]graphConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfgs []graphConfig
	if err := yaml.Unmarshal(data, &cfgs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	for _, cfg := range cfgs {
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfgs, nil
}

func (cfg graphConfig) validate() error {
	switch {
	case cfg.Name == "":
		return fmt.Errorf("config without a name")
	case cfg.Width < 1:
		return fmt.Errorf("%s: width must be positive", cfg.Name)
	case cfg.TotalLayers < 2:
		return fmt.Errorf("%s: need a source layer and at least one computed layer", cfg.Name)
	case cfg.NSources < 1:
		return fmt.Errorf("%s: nSources must be positive", cfg.Name)
	case cfg.StaticFraction < 0 || cfg.StaticFraction > 1:
		return fmt.Errorf("%s: staticFraction outside [0, 1]", cfg.Name)
	case cfg.ReadFraction < 0 || cfg.ReadFraction > 1:
		return fmt.Errorf("%s: readFraction outside [0, 1]", cfg.Name)
	case cfg.Iterations < 1:
		return fmt.Errorf("%s: iterations must be positive", cfg.Name)
	}
	return nil
}

func (cfg graphConfig) title() string {
	title := fmt.Sprintf("%dx%d %d sources", cfg.Width, cfg.TotalLayers, cfg.NSources)
	if cfg.StaticFraction < 1 {
		title += " dynamic"
	}
	if cfg.ReadFraction < 1 {
		title += fmt.Sprintf(" read %0.2f%%", 100*cfg.ReadFraction)
	}
	return title
}

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Ko-stant/dungeon-layout-engine/internal/grid"
	"github.com/Ko-stant/dungeon-layout-engine/internal/layout"
)

// Config is the server's environment surface.
type Config struct {
	Port        string  `env:"PORT" envDefault:"8080"`
	GridWidth   int     `env:"GRID_WIDTH" envDefault:"8"`
	GridHeight  int     `env:"GRID_HEIGHT" envDefault:"8"`
	StartIndex  int     `env:"START_INDEX" envDefault:"0"`
	Seed        int64   `env:"SEED" envDefault:"0"`
	RulesFile   string  `env:"RULES_FILE"`
	CellSpacing float64 `env:"CELL_SPACING" envDefault:"1.0"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// ClampStart forces the configured start index into [0, width*height).
// The generator treats an out-of-range start as an error, so clamping
// is the caller's job.
func (c *Config) ClampStart(width, height int) int {
	start := c.StartIndex
	if start < 0 {
		start = 0
	}
	if max := width*height - 1; start > max {
		start = max
	}
	return start
}

// loadRules reads the configured rule set file, or falls back to a
// built-in set when none is configured.
func loadRules(cfg *Config) ([]layout.PlacementRule, error) {
	if cfg.RulesFile == "" {
		return defaultRules(cfg.GridWidth, cfg.GridHeight), nil
	}
	rs, err := layout.LoadRuleSetFromFile(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	return rs.Rules, nil
}

// defaultRules covers the whole grid with two common variants and pins
// an entry hall to the top-left cell.
func defaultRules(width, height int) []layout.PlacementRule {
	whole := grid.Point{X: width - 1, Y: height - 1}
	return []layout.PlacementRule{
		{Min: grid.Point{}, Max: grid.Point{}, Obligatory: true, Variant: "entry-hall"},
		{Min: grid.Point{}, Max: whole, Variant: "stone-chamber"},
		{Min: grid.Point{}, Max: whole, Variant: "flooded-vault"},
	}
}

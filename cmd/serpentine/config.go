package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/serpentine/binning"
)

// Config carries optional run defaults from a YAML file. Zero values
// mean "not set"; flags given on the command line always win.
type Config struct {
	Threshold    float64 `yaml:"threshold"`
	MinThreshold float64 `yaml:"min_threshold"`
	Iterations   int     `yaml:"iterations"`
	Workers      int     `yaml:"workers"`
	Seed         int64   `yaml:"seed"`
}

// loadConfig reads and decodes a YAML config file.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig copies set config values into opts for every flag the user
// did not pass explicitly.
func applyConfig(cmd *cobra.Command, cfg Config, opts *binning.Options) {
	if cfg.Threshold != 0 && !cmd.Flags().Changed("threshold") {
		opts.Threshold = cfg.Threshold
	}
	if cfg.MinThreshold != 0 && !cmd.Flags().Changed("min-threshold") {
		opts.MinThreshold = cfg.MinThreshold
	}
	if cfg.Iterations != 0 && !cmd.Flags().Changed("iterations") {
		opts.Iterations = cfg.Iterations
	}
	if cfg.Workers != 0 && !cmd.Flags().Changed("workers") {
		opts.Workers = cfg.Workers
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		opts.Seed = cfg.Seed
	}
}

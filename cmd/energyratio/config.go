package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fileConfig carries analysis defaults loaded from a YAML file. Flags set
// explicitly on the command line win over file values.
type fileConfig struct {
	Confidence float64   `mapstructure:"confidence"`
	Bootstrap  int       `mapstructure:"bootstrap"`
	Overlap    float64   `mapstructure:"overlap"`
	Seed       int64     `mapstructure:"seed"`
	Workers    int       `mapstructure:"workers"`
	Bins       []float64 `mapstructure:"bins"`
	BinStart   float64   `mapstructure:"bin_start"`
	BinStop    float64   `mapstructure:"bin_stop"`
	BinWidth   float64   `mapstructure:"bin_width"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("confidence", 95.0)
	v.SetDefault("bootstrap", 0)
	v.SetDefault("overlap", 0.0)
	v.SetDefault("seed", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("bin_start", 0.0)
	v.SetDefault("bin_stop", 360.0)
	v.SetDefault("bin_width", 5.0)

	v.SetEnvPrefix("ENERGYRATIO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &fc, nil
}

// applyFileConfig copies file values into the options for every flag the
// user did not set explicitly.
func applyFileConfig(cmd *cobra.Command, o *opts, fc *fileConfig) {
	flags := cmd.Flags()

	if !flags.Changed("confidence") {
		o.confidence = fc.Confidence
	}
	if !flags.Changed("bootstrap") {
		o.bootstrap = fc.Bootstrap
	}
	if !flags.Changed("overlap") {
		o.overlap = fc.Overlap
	}
	if !flags.Changed("seed") {
		o.seed = fc.Seed
	}
	if !flags.Changed("workers") {
		o.workers = fc.Workers
	}
	if !flags.Changed("bins") && len(fc.Bins) > 0 {
		o.bins = fc.Bins
	}
	if !flags.Changed("bin-start") {
		o.binStart = fc.BinStart
	}
	if !flags.Changed("bin-stop") {
		o.binStop = fc.BinStop
	}
	if !flags.Changed("bin-width") {
		o.binWidth = fc.BinWidth
	}
}

// SPDX-License-Identifier: MIT

package experiment

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages experiment configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Run parameters
	v.SetDefault("run.seed", 1)
	v.SetDefault("run.output_dir", "results")
	v.SetDefault("run.scenarios", []string{})
	v.SetDefault("run.trials_override", 0)

	// Performance parameters
	v.SetDefault("performance.trial_workers", runtime.NumCPU())
	v.SetDefault("performance.engine_workers", 1)

	// Logging parameters
	v.SetDefault("logging.level", "info")

	v.SetDefault("metrics.enabled", true)

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for run parameters
func (c *Config) Seed() uint64        { return c.v.GetUint64("run.seed") }
func (c *Config) OutputDir() string   { return c.v.GetString("run.output_dir") }
func (c *Config) Scenarios() []string { return c.v.GetStringSlice("run.scenarios") }
func (c *Config) TrialsOverride() int { return c.v.GetInt("run.trials_override") }

func (c *Config) TrialWorkers() int  { return c.v.GetInt("performance.trial_workers") }
func (c *Config) EngineWorkers() int { return c.v.GetInt("performance.engine_workers") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

func (c *Config) MetricsEnabled() bool { return c.v.GetBool("metrics.enabled") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "isohash").Logger()
}

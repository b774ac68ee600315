package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Handicap
	HandicapBestFraction float64 `mapstructure:"HANDICAP_BEST_FRACTION"`
	HandicapWindow       int     `mapstructure:"HANDICAP_WINDOW"`

	// Benchmarks
	BenchmarkFile string `mapstructure:"BENCHMARK_FILE"` // optional JSON override for the built-in tables
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("HANDICAP_BEST_FRACTION", 0.40) // WHS-aligned; one mobile client shipped 0.50
	viper.SetDefault("HANDICAP_WINDOW", 20)
	viper.SetDefault("BENCHMARK_FILE", "")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.HandicapBestFraction <= 0 || config.HandicapBestFraction > 1 {
		return nil, fmt.Errorf("HANDICAP_BEST_FRACTION must be in (0, 1], got %v", config.HandicapBestFraction)
	}
	if config.HandicapWindow < 1 {
		return nil, fmt.Errorf("HANDICAP_WINDOW must be positive, got %d", config.HandicapWindow)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

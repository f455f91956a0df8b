// Package config reads CLI defaults from the environment. Every
// statistical function takes its parameters explicitly; these values only
// seed command-line flag defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"statlab/internal/errors"
)

// Config holds the CLI defaults
type Config struct {
	Analysis AnalysisConfig
	Fit      FitConfig
	Paths    PathConfig
}

// AnalysisConfig holds significance and synthesis defaults
type AnalysisConfig struct {
	Alpha float64
	Seed  int64
}

// FitConfig holds the default line-fit search grid
type FitConfig struct {
	SlopeMin     float64
	SlopeMax     float64
	InterceptMin float64
	InterceptMax float64
	Step         float64
}

// PathConfig holds default input file paths
type PathConfig struct {
	DataFile string
}

// Load reads configuration from a .env file (if present) and the
// environment, then validates it.
func Load() (*Config, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	config := &Config{
		Analysis: AnalysisConfig{
			Alpha: getEnvFloatOrDefault("STATLAB_ALPHA", 0.05),
			Seed:  int64(getEnvIntOrDefault("STATLAB_SEED", 42)),
		},
		Fit: FitConfig{
			SlopeMin:     getEnvFloatOrDefault("STATLAB_SLOPE_MIN", -10),
			SlopeMax:     getEnvFloatOrDefault("STATLAB_SLOPE_MAX", 10),
			InterceptMin: getEnvFloatOrDefault("STATLAB_INTERCEPT_MIN", -20),
			InterceptMax: getEnvFloatOrDefault("STATLAB_INTERCEPT_MAX", 20),
			Step:         getEnvFloatOrDefault("STATLAB_STEP", 0.1),
		},
		Paths: PathConfig{
			DataFile: getEnvOrDefault("STATLAB_DATA_FILE", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("STATLAB_ALPHA must be in (0,1)")
	}
	if config.Fit.Step <= 0 {
		return errors.ConfigInvalid("STATLAB_STEP must be > 0")
	}
	if config.Fit.SlopeMin > config.Fit.SlopeMax {
		return errors.ConfigInvalid("STATLAB_SLOPE_MIN must not exceed STATLAB_SLOPE_MAX")
	}
	if config.Fit.InterceptMin > config.Fit.InterceptMax {
		return errors.ConfigInvalid("STATLAB_INTERCEPT_MIN must not exceed STATLAB_INTERCEPT_MAX")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

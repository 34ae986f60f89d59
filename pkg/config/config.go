package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fridgefit/fridgefit/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	// Path to the recipe collection JSON file
	RecipesFile string

	// Default number of suggestions to show
	TopCount int

	// Log verbosity: debug, info, warn or error
	LogLevel string
}

// Load reads configuration from the environment. Every setting has a
// default, so Load only fails when the environment itself is unreadable.
// CLI flags take precedence over the values returned here.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Global.Debug("No .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("fridgefit")
	v.AutomaticEnv()

	v.SetDefault("recipes_file", filepath.Join("data", "recipes.json"))
	v.SetDefault("top", 1)
	v.SetDefault("log_level", "warn")

	cfg := &Config{
		RecipesFile: v.GetString("recipes_file"),
		TopCount:    v.GetInt("top"),
		LogLevel:    v.GetString("log_level"),
	}

	// At least one suggestion is always shown
	if cfg.TopCount < 1 {
		cfg.TopCount = 1
	}

	return cfg, nil
}

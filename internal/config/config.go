// Package config loads the spring CLI configuration from global and
// project-local config files and SPRING_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the spring CLI tool configuration
type Configuration struct {
	DefaultCommand    string `koanf:"default_command" validate:"required"`
	DefaultSubCommand string `koanf:"default_sub_command" validate:"required"`
	FetchTimeout      int    `koanf:"fetch_timeout" validate:"min=1,max=3600"` // seconds
	ShowProgress      bool   `koanf:"show_progress"`
	NoColor           bool   `koanf:"no_color"`
	GitCmd            string `koanf:"git_cmd" validate:"required"`
}

// GlobalConfigPath returns the path of the global config file
// (~/.spring/config.json), or an empty string when the home directory
// cannot be determined.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".spring", "config.json")
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	if globalPath := GlobalConfigPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("SPRING_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// NO_COLOR is honored regardless of config file contents
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: SPRING_FETCH_TIMEOUT -> fetch_timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SPRING_"))
}

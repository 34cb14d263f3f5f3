package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is process configuration, distinct from the per-store
// settings that live inside the database file.
type Config struct {
	DBPath           string        `yaml:"db_path" mapstructure:"db_path"`
	AppPassword      string        `yaml:"app_password" mapstructure:"app_password"`
	MaxLoginAttempts int           `yaml:"max_login_attempts" mapstructure:"max_login_attempts"`
	GeminiAPIKey     string        `yaml:"gemini_api_key" mapstructure:"gemini_api_key"`
	Model            string        `yaml:"model" mapstructure:"model"`
	MaxRetries       int           `yaml:"max_retries" mapstructure:"max_retries"`
	SuggestTimeout   time.Duration `yaml:"suggest_timeout" mapstructure:"suggest_timeout"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		DBPath:           defaultDBPath(),
		MaxLoginAttempts: 3,
		GeminiAPIKey:     "$GEMINI_API_KEY",
		Model:            "gemma-3-27b-it",
		MaxRetries:       3,
		SuggestTimeout:   30 * time.Second,
	}
}

func defaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "driftnotes", "driftnotes_db.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "driftnotes", "driftnotes_db.json")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "driftnotes"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "driftnotes"))

	// Environment variables
	viper.SetEnvPrefix("DRIFTNOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.GeminiAPIKey = expandEnv(cfg.GeminiAPIKey)
	cfg.AppPassword = expandEnv(cfg.AppPassword)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills unusable values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path is required")
	}
	if c.MaxLoginAttempts < 1 {
		c.MaxLoginAttempts = 3
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 3
	}
	if c.SuggestTimeout <= 0 {
		c.SuggestTimeout = 30 * time.Second
	}
	// An unexpanded key means the env var was not set.
	if strings.HasPrefix(c.GeminiAPIKey, "$") {
		c.GeminiAPIKey = ""
	}
	return nil
}

// AIConfigured reports whether a suggestion provider can be built.
func (c *Config) AIConfigured() bool {
	return c.GeminiAPIKey != ""
}

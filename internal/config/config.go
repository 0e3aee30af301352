package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	OutputRoot    string `mapstructure:"output_root" yaml:"output_root"`
	DBPath        string `mapstructure:"db_path" yaml:"db_path"`
	RecordHistory bool   `mapstructure:"record_history" yaml:"record_history"`
}

// Load reads and parses configuration from a YAML file
// If path is empty, searches for wordstress.yaml in current directory and ~/.config/wordstress/
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := DefaultConfig()
	v.SetDefault("output_root", defaults.OutputRoot)
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("record_history", defaults.RecordHistory)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wordstress")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "wordstress"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.OutputRoot == "" {
		errs = append(errs, errors.New("output_root cannot be empty"))
	}

	if c.RecordHistory && c.DBPath == "" {
		errs = append(errs, errors.New("db_path cannot be empty when record_history is enabled"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional YAML config file, then STMT_-prefixed
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"mwirth/statement-csv/internal/models"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Extraction struct {
		DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`
	} `mapstructure:"extraction" yaml:"extraction"`

	Rules struct {
		File        string `mapstructure:"file" yaml:"file"`
		FormatsFile string `mapstructure:"formats_file" yaml:"formats_file"`
	} `mapstructure:"rules" yaml:"rules"`

	Classification struct {
		AutoAssignThreshold float64 `mapstructure:"auto_assign_threshold" yaml:"auto_assign_threshold"`
		ReviewThreshold     float64 `mapstructure:"review_threshold" yaml:"review_threshold"`
	} `mapstructure:"classification" yaml:"classification"`
}

// InitializeConfig loads configuration with hierarchical precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-csv")
	v.AddConfigPath(".statement-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("extraction.default_format", "generic")

	v.SetDefault("rules.file", "rules.yaml")
	v.SetDefault("rules.formats_file", "formats.yaml")

	v.SetDefault("classification.auto_assign_threshold", models.AutoAssignThreshold)
	v.SetDefault("classification.review_threshold", models.ReviewThreshold)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Classification.AutoAssignThreshold < 0 || config.Classification.AutoAssignThreshold > 1 {
		return fmt.Errorf("classification.auto_assign_threshold must be between 0.0 and 1.0, got: %f",
			config.Classification.AutoAssignThreshold)
	}

	if config.Classification.ReviewThreshold < 0 || config.Classification.ReviewThreshold > config.Classification.AutoAssignThreshold {
		return fmt.Errorf("classification.review_threshold must be between 0.0 and the auto-assign threshold, got: %f",
			config.Classification.ReviewThreshold)
	}

	return nil
}

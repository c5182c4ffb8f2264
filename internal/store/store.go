// Package store loads and saves user-editable rule and format data
// from YAML files. Missing files are never an error: callers fall back
// to the compiled-in defaults so a fresh checkout works without any
// configuration.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"mwirth/statement-csv/internal/extractor"
	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
	"mwirth/statement-csv/internal/rules"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger overrides the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore manages loading and saving of rule and format overrides.
type RuleStore struct {
	RulesFile   string
	FormatsFile string
}

// NewRuleStore creates a store over the given file names. Empty names
// fall back to the standard file names.
func NewRuleStore(rulesFile, formatsFile string) *RuleStore {
	return &RuleStore{
		RulesFile:   rulesFile,
		FormatsFile: formatsFile,
	}
}

// rulesFileConfig is the on-disk shape of a rules override file.
type rulesFileConfig struct {
	Rules []models.CategoryRule `yaml:"rules"`
}

// formatsFileConfig is the on-disk shape of a formats override file.
type formatsFileConfig struct {
	Formats []extractor.FormatConfig `yaml:"formats"`
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "statement-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the category rule table. When no override file
// exists the compiled-in default table is returned.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("rules file not found, using default rules", logging.Field{Key: "file", Value: filename})
			return rules.Default(), nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var cfg rulesFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}
	if len(cfg.Rules) == 0 {
		log.Warn("rules file contains no rules, using default rules", logging.Field{Key: "file", Value: filePath})
		return rules.Default(), nil
	}
	if err := rules.Validate(cfg.Rules); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", filePath, err)
	}

	log.Debug("loaded rules",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(cfg.Rules)})
	return cfg.Rules, nil
}

// SaveRules writes the rule table to the rules file, creating parent
// directories as needed.
func (s *RuleStore) SaveRules(table []models.CategoryRule) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving rules file: %w", err)
	}
	if err == os.ErrNotExist {
		filePath = filename
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("config", filename)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(rulesFileConfig{Rules: table})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}
	if err := os.WriteFile(filePath, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	log.Debug("saved rules",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(table)})
	return nil
}

// LoadFormats registers any custom statement formats from the formats
// file. A missing file means only the built-in formats are available.
func (s *RuleStore) LoadFormats() error {
	filename := s.FormatsFile
	if filename == "" {
		filename = "formats.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("formats file not found, using built-in formats", logging.Field{Key: "file", Value: filename})
			return nil
		}
		return fmt.Errorf("error resolving formats file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading formats file: %w", err)
	}

	var cfg formatsFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("error parsing formats file: %w", err)
	}

	for _, formatCfg := range cfg.Formats {
		format, err := extractor.NewFormat(formatCfg)
		if err != nil {
			return fmt.Errorf("invalid format %q in %s: %w", formatCfg.Name, filePath, err)
		}
		extractor.Register(format)
	}

	log.Debug("loaded custom formats",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(cfg.Formats)})
	return nil
}

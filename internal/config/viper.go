// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. EXPENSE_LOG_LEVEL or EXPENSE_CSV_DELIMITER.
const EnvPrefix = "EXPENSE"

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig configures the ledger file format.
type CSVConfig struct {
	Delimiter         string   `mapstructure:"delimiter" yaml:"delimiter"`
	DateFormat        string   `mapstructure:"date_format" yaml:"date_format"`
	LegacyDateFormats []string `mapstructure:"legacy_date_formats" yaml:"legacy_date_formats"`
}

// CategoriesConfig points at the categories file.
type CategoriesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Categories CategoriesConfig `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-tracker")
	v.AddConfigPath(".expense-tracker")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "2006-01-02")
	v.SetDefault("csv.legacy_date_formats", []string{"02-01-2006"})

	v.SetDefault("categories.file", "categories.yaml")
}

// Validate checks the configuration values, e.g. after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	if strings.ContainsAny(config.CSV.Delimiter, "\"\r\n") {
		return fmt.Errorf("CSV delimiter cannot be a quote or line break, got: %q", config.CSV.Delimiter)
	}

	if !isDateLayout(config.CSV.DateFormat) {
		return fmt.Errorf("csv.date_format is not a usable date layout: %q", config.CSV.DateFormat)
	}
	for _, layout := range config.CSV.LegacyDateFormats {
		if !isDateLayout(layout) {
			return fmt.Errorf("csv.legacy_date_formats contains an unusable date layout: %q", layout)
		}
	}

	return nil
}

// isDateLayout reports whether layout formats and parses a calendar date
// without losing the year, month or day.
func isDateLayout(layout string) bool {
	if layout == "" {
		return false
	}
	probe := time.Date(2024, time.November, 23, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, probe.Format(layout))
	return err == nil && parsed.Equal(probe)
}

// DelimiterRune returns the configured delimiter as a rune, or 0 when unset.
func (c CSVConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

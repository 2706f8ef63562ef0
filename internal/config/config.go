// Package config provides configuration management for the vacancy report tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file picked up when no -config flag is given.
const DefaultPath = "configs/vacstat.yaml"

// Configuration validation errors.
var (
	ErrMissingOutputPath  = errors.New("report.output is required")
	ErrInvalidOutputExt   = errors.New("report.output must have the .xlsx extension")
	ErrMissingSheetName   = errors.New("report.year_sheet and report.city_sheet are required")
	ErrDuplicateSheetName = errors.New("report.year_sheet and report.city_sheet must differ")
	ErrInvalidTopCities   = errors.New("stats.top_cities must be at least 1")
	ErrInvalidMinShare    = errors.New("stats.min_city_share must be in [0, 1)")
	ErrMissingColumn      = errors.New("input.columns entries must not be empty")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete report configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Stats   StatsConfig   `yaml:"stats"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes the CSV export.
type InputConfig struct {
	Columns ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig maps vacancy fields to CSV header names.
type ColumnsConfig struct {
	Title       string `yaml:"title"`
	SalaryFrom  string `yaml:"salary_from"`
	SalaryTo    string `yaml:"salary_to"`
	Currency    string `yaml:"currency"`
	PublishedAt string `yaml:"published_at"`
	Area        string `yaml:"area"`
}

// StatsConfig tunes the city ranking.
type StatsConfig struct {
	MinCityShare float64 `yaml:"min_city_share"`
	TopCities    int     `yaml:"top_cities"`
}

// ReportConfig defines the spreadsheet output.
type ReportConfig struct {
	Output    string `yaml:"output"`
	YearSheet string `yaml:"year_sheet"`
	CitySheet string `yaml:"city_sheet"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Columns: ColumnsConfig{
				Title:       "name",
				SalaryFrom:  "salary_from",
				SalaryTo:    "salary_to",
				Currency:    "salary_currency",
				PublishedAt: "published_at",
				Area:        "area_name",
			},
		},
		Stats: StatsConfig{
			MinCityShare: 0.01,
			TopCities:    10,
		},
		Report: ReportConfig{
			Output:    "report.xlsx",
			YearSheet: "Статистика по годам",
			CitySheet: "Статистика по городам",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Report.Output == "" {
		return ErrMissingOutputPath
	}

	if !strings.EqualFold(filepath.Ext(c.Report.Output), ".xlsx") {
		return fmt.Errorf("%w: %s", ErrInvalidOutputExt, c.Report.Output)
	}

	if c.Report.YearSheet == "" || c.Report.CitySheet == "" {
		return ErrMissingSheetName
	}

	if c.Report.YearSheet == c.Report.CitySheet {
		return ErrDuplicateSheetName
	}

	if c.Stats.TopCities < 1 {
		return ErrInvalidTopCities
	}

	if c.Stats.MinCityShare < 0 || c.Stats.MinCityShare >= 1 {
		return ErrInvalidMinShare
	}

	columns := map[string]string{
		"title":        c.Input.Columns.Title,
		"salary_from":  c.Input.Columns.SalaryFrom,
		"salary_to":    c.Input.Columns.SalaryTo,
		"currency":     c.Input.Columns.Currency,
		"published_at": c.Input.Columns.PublishedAt,
		"area":         c.Input.Columns.Area,
	}

	for name, header := range columns {
		if strings.TrimSpace(header) == "" {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Output: %s, TopCities: %d, MinCityShare: %.4f}",
		c.Report.Output,
		c.Stats.TopCities,
		c.Stats.MinCityShare,
	)
}

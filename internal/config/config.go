package config

import (
	"errors"
	"fmt"

	"github.com/IvanShishkin/dirlist/internal/progress"
	"github.com/IvanShishkin/dirlist/internal/report"
	"github.com/IvanShishkin/dirlist/pkg/models"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (DIRLIST_PATH, DIRLIST_MD5, ...)
const EnvPrefix = "DIRLIST"

// Config represents the inventory configuration
type Config struct {
	// Scan settings
	Path    string `mapstructure:"path"`    // root directory to list
	MD5     bool   `mapstructure:"md5"`     // include md5 column
	SHA1    bool   `mapstructure:"sha1"`    // include sha1 column
	SHA256  bool   `mapstructure:"sha256"`  // include sha256 column
	Verbose bool   `mapstructure:"verbose"` // progress output and debug logging

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // text, csv, json, yaml, md
	OutputFile   string `mapstructure:"output_file"`   // output file path, stdout if empty

	// Progress settings
	BarWidth int `mapstructure:"bar_width"` // progress bar cells
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("path", "")
	v.SetDefault("md5", false)
	v.SetDefault("sha1", false)
	v.SetDefault("sha256", false)
	v.SetDefault("verbose", false)
	v.SetDefault("report_format", report.FormatText)
	v.SetDefault("output_file", "")
	v.SetDefault("bar_width", progress.DefaultWidth)

	// Optional config file
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings and normalizes the report format
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("start directory is required")
	}

	format, err := report.ParseFormat(c.ReportFormat)
	if err != nil {
		return err
	}
	c.ReportFormat = format

	if c.BarWidth <= 0 {
		return fmt.Errorf("bar width must be positive, got %d", c.BarWidth)
	}
	return nil
}

// ScanOptions returns the options for one inventory run
func (c *Config) ScanOptions() models.ScanOptions {
	return models.ScanOptions{
		RootPath:      c.Path,
		IncludeMD5:    c.MD5,
		IncludeSHA1:   c.SHA1,
		IncludeSHA256: c.SHA256,
		Verbose:       c.Verbose,
	}
}

package pnl

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the file locations and service settings of one account. The
// CLI loads it from a YAML file; every field has a default so a minimal file
// (or none at all) still yields a working setup rooted in the current
// directory.
type Config struct {
	TradesFile        string `yaml:"trades_file"`
	PricesFile        string `yaml:"prices_file"`
	PreviousCloseFile string `yaml:"previous_close_file"`
	SplitsFile        string `yaml:"splits_file"`

	Quotes struct {
		URL               string `yaml:"url"`
		PricePath         string `yaml:"price_path"`
		PreviousClosePath string `yaml:"previous_close_path"`
	} `yaml:"quotes"`

	Assist struct {
		Model string `yaml:"model"`
	} `yaml:"assist"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	c := &Config{
		TradesFile:        "trades.json",
		PricesFile:        "prices.json",
		PreviousCloseFile: "previous_close.json",
		SplitsFile:        "splits.json",
	}
	c.Assist.Model = "gemini-2.5-pro"
	return c
}

// LoadConfig reads and validates a YAML configuration file. Empty fields are
// filled from DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}

	d := DefaultConfig()
	if c.TradesFile == "" {
		c.TradesFile = d.TradesFile
	}
	if c.PricesFile == "" {
		c.PricesFile = d.PricesFile
	}
	if c.PreviousCloseFile == "" {
		c.PreviousCloseFile = d.PreviousCloseFile
	}
	if c.SplitsFile == "" {
		c.SplitsFile = d.SplitsFile
	}
	if c.Assist.Model == "" {
		c.Assist.Model = d.Assist.Model
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// Validate checks the configuration for mistakes a typo would produce.
func (c *Config) Validate() error {
	if c.TradesFile == "" {
		return fmt.Errorf("trades_file cannot be empty")
	}
	if c.PricesFile == "" {
		return fmt.Errorf("prices_file cannot be empty")
	}
	if c.PreviousCloseFile == "" {
		return fmt.Errorf("previous_close_file cannot be empty")
	}
	if c.Quotes.URL != "" && !strings.Contains(c.Quotes.URL, "%s") {
		return fmt.Errorf("quotes.url must contain a %%s placeholder for the symbol, got %q", c.Quotes.URL)
	}
	return nil
}

// Package config loads countrymap configuration from a YAML file,
// merging it over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "countrymap.yaml"

// Config holds all countrymap configuration.
type Config struct {
	Boundaries BoundariesConfig `yaml:"boundaries"`
	Chart      ChartConfig      `yaml:"chart"`
}

// BoundariesConfig configures where boundary documents come from and
// where fetched copies are kept.
type BoundariesConfig struct {
	URLTemplate string `yaml:"url_template"`
	CachePath   string `yaml:"cache_path"`
}

// ChartConfig holds chart rendering defaults; flags override them.
type ChartConfig struct {
	Country           string `yaml:"country"`
	SchemeType        string `yaml:"scheme_type"`
	LinearScheme      string `yaml:"linear_scheme"`
	CategoricalScheme string `yaml:"categorical_scheme"`
	NumberFormat      string `yaml:"number_format"`
	EntityField       string `yaml:"entity_field"`
	CrossFilter       bool   `yaml:"cross_filter"`
}

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Boundaries: BoundariesConfig{
			URLTemplate: "https://maps.example.org/countries/{country}.geojson",
			CachePath:   "",
		},
		Chart: ChartConfig{
			Country:      "france",
			SchemeType:   "linear",
			NumberFormat: ".3s",
			EntityField:  "country_id",
			CrossFilter:  true,
		},
	}
}

// Load reads config from path, falling back to defaults when the file
// does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if !strings.Contains(c.Boundaries.URLTemplate, "{country}") {
		return fmt.Errorf("%w: boundaries.url_template must contain {country}", ErrInvalidConfig)
	}
	if c.Chart.Country == "" {
		return fmt.Errorf("%w: chart.country must be set", ErrInvalidConfig)
	}
	switch c.Chart.SchemeType {
	case "linear", "categorical":
	default:
		return fmt.Errorf("%w: chart.scheme_type must be linear or categorical", ErrInvalidConfig)
	}
	return nil
}

// Package config provides configuration loading and validation for Semschema.
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents the complete Semschema configuration.
type Config struct {
	// Namespace is the concept URI namespace, an absolute IRI ending in
	// '#' or '/'. Required.
	Namespace string `yaml:"namespace"`

	// Prefix is the display prefix for the user namespace in grouped
	// output (default: "ns"). It never affects the flat form.
	Prefix string `yaml:"prefix"`

	// Language is the BCP 47 tag applied to every skos:prefLabel
	// (default: "en").
	Language string `yaml:"language"`

	// Output is the directory the artifacts are written to (default: "out").
	Output string `yaml:"output"`

	NATS  NATSConfig  `yaml:"nats"`
	Watch WatchConfig `yaml:"watch"`
}

// NATSConfig configures optional graph-ingest publishing.
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled).
	URL string `yaml:"url"`
	// Subject overrides the default ingest subject.
	Subject string `yaml:"subject"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before re-running.
	Debounce time.Duration `yaml:"debounce"`
	// MetricsAddr serves Prometheus metrics when set (e.g. ":9090").
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns a Config with sensible defaults. The namespace has
// no default: it is the one required setting.
func DefaultConfig() *Config {
	return &Config{
		Prefix:   "ns",
		Language: "en",
		Output:   "out",
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	u, err := url.Parse(c.Namespace)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("namespace must be an absolute IRI, got %q", c.Namespace)
	}
	if !strings.HasSuffix(c.Namespace, "#") && !strings.HasSuffix(c.Namespace, "/") {
		return fmt.Errorf("namespace must end in '#' or '/', got %q", c.Namespace)
	}
	if !prefixPattern.MatchString(c.Prefix) {
		return fmt.Errorf("prefix %q is not a valid prefix name", c.Prefix)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q is not a valid BCP 47 tag: %w", c.Language, err)
	}
	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Namespace != "" {
		c.Namespace = other.Namespace
	}
	if other.Prefix != "" {
		c.Prefix = other.Prefix
	}
	if other.Language != "" {
		c.Language = other.Language
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Watch.MetricsAddr != "" {
		c.Watch.MetricsAddr = other.Watch.MetricsAddr
	}
}

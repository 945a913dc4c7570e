// Package config handles loading the esmon configuration file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "10s" parse naturally.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Config is the top-level esmon configuration.
type Config struct {
	URL      string   `yaml:"url"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Insecure bool     `yaml:"insecure"`
	Timeout  Duration `yaml:"timeout"`
	// Nodes lists the node names expected to be present in the cluster.
	// When empty, topology drift detection is disabled.
	Nodes []string `yaml:"nodes"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		URL:     "http://localhost:9200",
		Timeout: Duration{10 * time.Second},
	}
}

// Load reads a YAML config from path. A missing file yields the defaults,
// not an error; a present but unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.URL == "" {
		cfg.URL = Default().URL
	}
	if cfg.Timeout.Duration <= 0 {
		cfg.Timeout = Default().Timeout
	}
	for i, n := range cfg.Nodes {
		cfg.Nodes[i] = strings.TrimSpace(n)
	}
	return cfg, nil
}

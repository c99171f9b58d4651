package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "regexfa.yaml"

// Config is the on-disk configuration of the regexfa tool.
type Config struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
	Export   Export `yaml:"export" json:"export"`
	Server   Server `yaml:"server" json:"server"`
}

// Export controls how automata are written out.
type Export struct {
	Format      string `yaml:"format" json:"format"`
	HideLabels  bool   `yaml:"hide_labels" json:"hide_labels"`
	Renderer    string `yaml:"renderer" json:"renderer"`
	ImageFormat string `yaml:"image_format" json:"image_format"`
}

// Server configures `regexfa serve`.
type Server struct {
	Addr             string   `yaml:"addr" json:"addr"`
	RedisAddr        string   `yaml:"redis_addr" json:"redis_addr"`
	CacheTTL         Duration `yaml:"cache_ttl" json:"cache_ttl"`
	MaxPatternLength int      `yaml:"max_pattern_length" json:"max_pattern_length"`
	MaxDFAStates     int      `yaml:"max_dfa_states" json:"max_dfa_states"`
}

// Duration is a time.Duration written as "10m" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Export: Export{
			Format:      "dot",
			Renderer:    "dot",
			ImageFormat: "png",
		},
		Server: Server{
			Addr:             ":8080",
			CacheTTL:         Duration{10 * time.Minute},
			MaxPatternLength: 256,
			MaxDFAStates:     10000,
		},
	}
}

// Load reads a YAML or JSON (by extension) config file on top of Default.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

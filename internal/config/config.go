// Package config loads cipherkit settings from an optional YAML file and
// CIPHERKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CIPHERKIT_"

// DefaultMaxInputSize bounds a single interactive line.
const DefaultMaxInputSize = 4096

// Config is the resolved application configuration.
type Config struct {
	LogLevel     string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	MaxInputSize int     `mapstructure:"max_input_size" validate:"min=1,max=16777216"`
	Style        string  `mapstructure:"style" validate:"oneof=auto dark light notty"`
	Banner       bool    `mapstructure:"banner"`
	Metrics      Metrics `mapstructure:"metrics"`
}

// Metrics configures the prometheus collectors.
type Metrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required,metricname"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		LogLevel:     "warn",
		MaxInputSize: DefaultMaxInputSize,
		Style:        "auto",
		Banner:       true,
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "cipherkit",
		},
	}
}

var (
	validate       *validator.Validate
	metricNameExpr = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("metricname", func(fl validator.FieldLevel) bool {
		return metricNameExpr.MatchString(fl.Field().String())
	})
}

// envKeys maps environment suffixes to config paths.
var envKeys = map[string][]string{
	"LOG_LEVEL":         {"log_level"},
	"MAX_INPUT_SIZE":    {"max_input_size"},
	"STYLE":             {"style"},
	"BANNER":            {"banner"},
	"METRICS_ENABLED":   {"metrics", "enabled"},
	"METRICS_NAMESPACE": {"metrics", "namespace"},
}

// Load reads path (if it exists), applies environment overrides and validates
// the result. An empty path skips the file.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	raw, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	for suffix, keys := range envKeys {
		if v, ok := lookup(EnvPrefix + suffix); ok {
			setPath(raw, keys, v)
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	raw := map[string]any{}
	if path == "" {
		return raw, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func setPath(m map[string]any, keys []string, v string) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = v
}

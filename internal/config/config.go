package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/karupanerura/pick/internal/split"
)

// Config carries the defaults normally given as flags. Explicit flags always
// win over a loaded file.
//
// OutputSeparator is a pointer because its built-in default depends on the
// selection mode (a space for fields, empty for character-wise) and an
// explicit empty separator is meaningful; nil means the file did not set it.
type Config struct {
	FieldSeparator  string  `mapstructure:"field_separator"`
	OutputSeparator *string `mapstructure:"output_separator"`
	CharacterWise   bool    `mapstructure:"character_wise"`
	NonGreedy       bool    `mapstructure:"non_greedy"`
	Exclusive       bool    `mapstructure:"exclusive"`
	JSON            bool    `mapstructure:"json"`
}

var defaults = map[string]any{
	"field_separator": split.DefaultFieldSeparator,
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(nil)
	if err != nil {
		panic(fmt.Sprintf("built-in defaults must decode: %v", err))
	}
	return cfg
}

// Load reads a YAML defaults file. Keys missing from the file keep their
// built-in values.
func Load(path string) (*Config, error) {
	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%q): %w", path, err)
	}

	cfg, err := Parse(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration bytes.
func Parse(yamlBytes []byte) (*Config, error) {
	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	var raw map[string]any
	if len(jsonBytes) != 0 {
		if err := json.Unmarshal(jsonBytes, &raw); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}
	return decode(raw)
}

func decode(raw map[string]any) (*Config, error) {
	var cfg Config
	if err := mapstructure.Decode(lo.Assign(defaults, raw), &cfg); err != nil {
		return nil, fmt.Errorf("mapstructure.Decode: %w", err)
	}
	return &cfg, nil
}

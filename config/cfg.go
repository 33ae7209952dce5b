package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/iw2rmb/sceneedit/markup"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	WindowConfig struct {
		Width  int `yaml:"width" validate:"min=20"`
		Height int `yaml:"height" validate:"min=5"`
	}

	SchemeConfig struct {
		Foreground string `yaml:"foreground" validate:"required,hexcolor"`
		Background string `yaml:"background" validate:"required,hexcolor"`
	}

	ColorsConfig struct {
		Bright SchemeConfig `yaml:"bright"`
		Light  SchemeConfig `yaml:"light"`
		Dark   SchemeConfig `yaml:"dark"`
	}

	EditorConfig struct {
		Dialect       string       `yaml:"dialect" validate:"oneof=bracket angle"`
		LiveWordCount bool         `yaml:"live_word_count"`
		ColorMode     int          `yaml:"color_mode" validate:"min=0,max=2"`
		HistoryLimit  int          `yaml:"history_limit" validate:"gte=-1"`
		Locale        string       `yaml:"locale" validate:"required,bcp47_language_tag"`
		Window        WindowConfig `yaml:"window"`
		Colors        ColorsConfig `yaml:"colors"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Editor  EditorConfig  `yaml:"editor"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// MarkupDialect returns the configured storage dialect.
func (e *EditorConfig) MarkupDialect() (markup.Dialect, error) {
	return markup.DialectByName(e.Dialect)
}

// Language returns the configured locale, falling back to English.
func (e *EditorConfig) Language() language.Tag {
	tag, err := language.Parse(e.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Scheme returns the colors for color mode mode; out of range modes get the
// bright scheme.
func (c *ColorsConfig) Scheme(mode int) SchemeConfig {
	switch mode {
	case 1:
		return c.Light
	case 2:
		return c.Dark
	default:
		return c.Bright
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so yaml.Unmarshal is not enough
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the embedded template to get defaults, overlays
// the file at path on top of it (when path is not empty) and validates the
// result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands the configuration template and returns it.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// Save writes cfg to path, replacing the file.
func Save(path string, cfg *Config) error {
	data, err := Dump(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

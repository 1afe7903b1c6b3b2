// Package config loads mdtable configuration files.
//
// Configuration is read from YAML (config.yaml, config.yml) or TOML
// (config.toml) under the user config directory, or from an explicit path.
// Fields that a file omits keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/mdtable"
)

// EnvPath names the environment variable holding an explicit config path.
const EnvPath = "MDTABLE_CONFIG"

// Width modes.
const (
	WidthCodepoint = "codepoint"
	WidthEastAsian = "east-asian"
)

var defaultNames = []string{"config.yaml", "config.yml", "config.toml"}

// Config represents an mdtable configuration file.
type Config struct {
	// Input is the input format. Empty means guess from the file extension,
	// then fall back to CSV.
	Input string `yaml:"input" toml:"input"`
	// Delimiter is the CSV field delimiter, a single character or "tab".
	Delimiter string `yaml:"delimiter" toml:"delimiter"`
	// Kind selects the table formatter.
	Kind string `yaml:"kind" toml:"kind"`
	// Width is the cell width mode: "codepoint" or "east-asian".
	Width string `yaml:"width" toml:"width"`
	// Caption enables trailing caption-row detection.
	Caption bool `yaml:"caption" toml:"caption"`
	// Strict turns validation warnings into a failure.
	Strict bool `yaml:"strict" toml:"strict"`
	// LogLevel is the minimum log level.
	LogLevel string `yaml:"log-level" toml:"log-level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delimiter: ",",
		Kind:      string(mdtable.GFM),
		Width:     WidthCodepoint,
		Caption:   true,
		LogLevel:  "info",
	}
}

// Load reads the configuration at path. An empty path checks $MDTABLE_CONFIG
// and then the default locations; a missing default file yields [Default].
// An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path != "" {
		return loadFile(path)
	}
	dir, err := Dir()
	if err != nil {
		return Default(), nil
	}
	for _, name := range defaultNames {
		cfg, err := loadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

// Dir returns the directory searched for default config files.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	return filepath.Join(base, "mdtable"), nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

// InputFormat resolves the input format for the file at path.
func (c Config) InputFormat(path string) (mdtable.InputFormat, error) {
	if c.Input != "" {
		return mdtable.ParseInputFormat(c.Input)
	}
	if f, ok := mdtable.InputFormatForPath(path); ok {
		return f, nil
	}
	return mdtable.CSV, nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c Config) DelimiterRune() (rune, error) {
	switch strings.ToLower(c.Delimiter) {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError || size != len(c.Delimiter) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return r, nil
}

// WidthFunc returns the cell width function for the configured mode.
func (c Config) WidthFunc() (mdtable.WidthFunc, error) {
	switch strings.ToLower(c.Width) {
	case "", WidthCodepoint:
		return mdtable.CodepointWidth, nil
	case WidthEastAsian, "eastasian", "wide":
		return mdtable.EastAsianWidth, nil
	default:
		return nil, fmt.Errorf("unknown width mode %q", c.Width)
	}
}

// Options returns the formatter options for c.
func (c Config) Options() ([]mdtable.Option, error) {
	width, err := c.WidthFunc()
	if err != nil {
		return nil, err
	}
	opts := []mdtable.Option{mdtable.WithWidthFunc(width)}
	if !c.Caption {
		opts = append(opts, mdtable.WithoutCaption())
	}
	return opts, nil
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the jdom command-line tool from a YAML
// or HuJSON configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/ast"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// Config holds settings for parsing and writing JSON.
type Config struct {
	Comments       bool   `yaml:"comments"`
	TrailingCommas bool   `yaml:"trailing_commas"`
	NaNAndInf      bool   `yaml:"nan_and_inf"`
	MaxDepth       int    `yaml:"max_depth"`
	AutoUTF        bool   `yaml:"auto_utf"`
	Indent         string `yaml:"indent"`
	EscapeUnicode  bool   `yaml:"escape_unicode"`
	LogLevel       string `yaml:"log_level"`
}

// ParseOptions returns parser options corresponding to c.
func (c Config) ParseOptions() *jdom.Options {
	return &jdom.Options{
		AllowComments:       c.Comments,
		AllowTrailingCommas: c.TrailingCommas,
		AllowNaNAndInf:      c.NaNAndInf,
		MaxDepth:            c.MaxDepth,
	}
}

// WriterConfig returns writer settings corresponding to c.
func (c Config) WriterConfig() jdom.WriterConfig {
	return jdom.WriterConfig{
		EmitNaNAndInf: c.NaNAndInf,
		EscapeUnicode: c.EscapeUnicode,
		Indent:        c.Indent,
	}
}

// Format identifies the syntax of a configuration file.
type Format int

const (
	YAML   Format = iota // YAML
	HuJSON               // JSON with comments and trailing commas
)

// FormatOf returns the format implied by the extension of path.
// Files ending in .json, .hujson, or .jwcc are HuJSON; all others are YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".hujson", ".jwcc":
		return HuJSON
	default:
		return YAML
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// Parse parses configuration data in the given format. Unknown settings are
// reported as errors.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case YAML:
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return Config{}, errors.Wrap(err, "parsing YAML")
		}
	case HuJSON:
		std, err := hujson.Standardize(data)
		if err != nil {
			return Config{}, errors.Wrap(err, "parsing HuJSON")
		}
		v, err := ast.Parse(jdom.NewMemoryStream(std), nil)
		if err != nil {
			return Config{}, errors.Wrap(err, "parsing JSON")
		}
		if err := cfg.decode(v); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, errors.Errorf("unknown config format %d", format)
	}
	return cfg, cfg.Validate()
}

// Validate reports an error if c contains invalid settings.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("invalid max_depth %d", c.MaxDepth)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return errors.Errorf("indent %q must contain only spaces and tabs", c.Indent)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// decode populates c from the members of a JSON object.
func (c *Config) decode(v ast.Value) error {
	obj, ok := v.(ast.Object)
	if !ok {
		return errors.Errorf("config must be an object, got %v", ast.KindOf(v))
	}
	for _, m := range obj {
		var err error
		switch m.Key {
		case "comments":
			err = decodeBool(m, &c.Comments)
		case "trailing_commas":
			err = decodeBool(m, &c.TrailingCommas)
		case "nan_and_inf":
			err = decodeBool(m, &c.NaNAndInf)
		case "auto_utf":
			err = decodeBool(m, &c.AutoUTF)
		case "escape_unicode":
			err = decodeBool(m, &c.EscapeUnicode)
		case "max_depth":
			err = decodeInt(m, &c.MaxDepth)
		case "indent":
			err = decodeString(m, &c.Indent)
		case "log_level":
			err = decodeString(m, &c.LogLevel)
		default:
			err = errors.Errorf("unknown setting %q", m.Key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func decodeBool(m *ast.Member, out *bool) error {
	b, ok := m.Value.(ast.Bool)
	if !ok {
		return errors.Errorf("setting %q: want bool, got %v", m.Key, ast.KindOf(m.Value))
	}
	*out = bool(b)
	return nil
}

func decodeInt(m *ast.Member, out *int) error {
	n, ok := m.Value.(ast.Number)
	if !ok {
		return errors.Errorf("setting %q: want number, got %v", m.Key, ast.KindOf(m.Value))
	}
	z, ok := n.Int64()
	if !ok || int64(int(z)) != z {
		return errors.Errorf("setting %q: %s is not an integer", m.Key, n.JSON())
	}
	*out = int(z)
	return nil
}

func decodeString(m *ast.Member, out *string) error {
	s, ok := m.Value.(ast.String)
	if !ok {
		return errors.Errorf("setting %q: want string, got %v", m.Key, ast.KindOf(m.Value))
	}
	*out = string(s)
	return nil
}

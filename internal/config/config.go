package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Field store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config is the command line configuration.
type Config struct {
	Site      string `toml:"site" yaml:"site" json:"site"`
	Templates string `toml:"templates" yaml:"templates" json:"templates"`
	Fields    Fields `toml:"fields" yaml:"fields" json:"fields"`
	Log       Log    `toml:"log" yaml:"log" json:"log"`
	FAQ       FAQ    `toml:"faq" yaml:"faq" json:"faq"`
	Server    Server `toml:"server" yaml:"server" json:"server"`
}

// Fields selects where question/answer text is read from.
type Fields struct {
	Backend    string `toml:"backend" yaml:"backend" json:"backend"`
	SQLitePath string `toml:"sqlite_path" yaml:"sqlite_path" json:"sqlite_path"`
}

// Log configures the logger.
type Log struct {
	Mode string `toml:"mode" yaml:"mode" json:"mode"`
}

// FAQ configures the FAQ schema extension.
type FAQ struct {
	Priority int `toml:"priority" yaml:"priority" json:"priority"`
}

// Server configures the HTTP server.
type Server struct {
	Addr   string `toml:"addr" yaml:"addr" json:"addr"`
	Prefix string `toml:"prefix" yaml:"prefix" json:"prefix"`
}

// Load reads the configuration at path. An empty path returns the defaults.
// The format follows the file extension; unknown extensions are read as TOML.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, path, &cfg); err != nil {
			return nil, err
		}
		cfg.resolveRelative(filepath.Dir(path))
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(data []byte, path string, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// resolveRelative makes file paths in the config relative to the config file
// location rather than the working directory.
func (c *Config) resolveRelative(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || p == ":memory:" {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Site = resolve(c.Site)
	c.Templates = resolve(c.Templates)
	c.Fields.SQLitePath = resolve(c.Fields.SQLitePath)
}

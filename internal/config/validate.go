package config

import (
	"errors"
	"fmt"
	"strings"
)

func (c *Config) normalize() {
	c.Site = strings.TrimSpace(c.Site)
	c.Templates = strings.TrimSpace(c.Templates)
	c.Fields.Backend = strings.ToLower(strings.TrimSpace(c.Fields.Backend))
	if c.Fields.Backend == "" {
		c.Fields.Backend = BackendMemory
	}
	c.Fields.SQLitePath = strings.TrimSpace(c.Fields.SQLitePath)
	if c.Fields.SQLitePath == "" {
		c.Fields.SQLitePath = DefaultSQLitePath
	}
	c.Log.Mode = strings.ToLower(strings.TrimSpace(c.Log.Mode))
	if c.Log.Mode == "" {
		c.Log.Mode = DefaultLogMode
	}
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	c.Server.Prefix = "/" + strings.Trim(strings.TrimSpace(c.Server.Prefix), "/")
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	var problems []string

	switch c.Fields.Backend {
	case BackendMemory, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("fields.backend must be %q or %q, got %q", BackendMemory, BackendSQLite, c.Fields.Backend))
	}
	switch c.Log.Mode {
	case "development", "production", "silent":
	default:
		problems = append(problems, fmt.Sprintf("log.mode must be development, production or silent, got %q", c.Log.Mode))
	}
	if c.FAQ.Priority < 0 {
		problems = append(problems, "faq.priority must not be negative")
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

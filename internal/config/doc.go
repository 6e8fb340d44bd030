// Package config loads the command line configuration from TOML, YAML or JSON
// files. Defaults apply first, file values override them, and the result is
// normalized and validated before use.
package config

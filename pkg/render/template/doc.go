// Package template defines the renderer-agnostic template interface used by
// page rendering. The pongo subpackage provides the default engine.
package template

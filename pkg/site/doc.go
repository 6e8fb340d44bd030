// Package site loads a site fixture (items, per-item fields and pages with
// their content queries) and serves as the content-query engine for page
// rendering. Fixtures are JSON or YAML.
package site

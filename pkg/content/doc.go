// Package content defines the items a page render pulls from content queries.
// Items are read-only to the rest of the module; hooks inspect them but never
// rewrite what downstream rendering receives.
package content

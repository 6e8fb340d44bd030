package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-faqschema/pkg/content"
)

// ErrPageNotFound is returned when a slug does not match any page.
var ErrPageNotFound = errors.New("site: page not found")

// Page is a renderable page and the content queries it runs.
type Page struct {
	Slug    string          `json:"slug" yaml:"slug"`
	Title   string          `json:"title" yaml:"title"`
	Queries []content.Query `json:"queries" yaml:"queries"`
}

// Site is a loaded fixture. It is read-only after loading and safe for
// concurrent use.
type Site struct {
	Name string

	items  []content.Item
	byID   map[int64]content.Item
	fields map[int64]map[string]any
	pages  map[string]Page
	order  []string
}

// Ensure Site implements the content.Engine interface.
var _ content.Engine = (*Site)(nil)

type fixtureFile struct {
	Name   string                   `json:"name" yaml:"name"`
	Items  []content.Item           `json:"items" yaml:"items"`
	Fields map[int64]map[string]any `json:"fields" yaml:"fields"`
	Pages  []Page                   `json:"pages" yaml:"pages"`
}

// LoadFile reads a fixture from disk.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read %s: %w", path, err)
	}
	return Parse(data, filepath.Base(path))
}

// LoadFS reads a fixture from fsys.
func LoadFS(fsys fs.FS, path string) (*Site, error) {
	if fsys == nil {
		return nil, errors.New("site: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("site: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes fixture data, trying JSON first and YAML second. source is
// used in error messages.
func Parse(data []byte, source string) (*Site, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("site: file %s is empty", source)
	}

	var doc fixtureFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = fixtureFile{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return nil, fmt.Errorf("site: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	return build(doc, source)
}

func build(doc fixtureFile, source string) (*Site, error) {
	s := &Site{
		Name:   strings.TrimSpace(doc.Name),
		items:  make([]content.Item, 0, len(doc.Items)),
		byID:   make(map[int64]content.Item, len(doc.Items)),
		fields: make(map[int64]map[string]any, len(doc.Fields)),
		pages:  make(map[string]Page, len(doc.Pages)),
	}

	for _, item := range doc.Items {
		item.Type = strings.TrimSpace(item.Type)
		if _, exists := s.byID[item.ID]; exists {
			return nil, fmt.Errorf("site: file %s defines duplicate item id %d", source, item.ID)
		}
		s.byID[item.ID] = item
		s.items = append(s.items, item)
	}

	for id, values := range doc.Fields {
		if _, ok := s.byID[id]; !ok {
			return nil, fmt.Errorf("site: file %s has fields for unknown item %d", source, id)
		}
		copied := make(map[string]any, len(values))
		for name, value := range values {
			copied[strings.TrimSpace(name)] = value
		}
		s.fields[id] = copied
	}

	for _, page := range doc.Pages {
		slug := NormalizeSlug(page.Slug)
		if slug == "" {
			return nil, fmt.Errorf("site: file %s defines a page with an empty slug", source)
		}
		if _, exists := s.pages[slug]; exists {
			return nil, fmt.Errorf("site: file %s defines duplicate page %q", source, slug)
		}
		page.Slug = slug
		page.Queries = append([]content.Query(nil), page.Queries...)
		s.pages[slug] = page
		s.order = append(s.order, slug)
	}

	return s, nil
}

// NormalizeSlug trims whitespace and surrounding slashes. The root page "/"
// normalizes to "index".
func NormalizeSlug(slug string) string {
	trimmed := strings.Trim(strings.TrimSpace(slug), "/")
	if trimmed == "" && strings.Contains(slug, "/") {
		return "index"
	}
	return trimmed
}

// Page returns the page registered under slug.
func (s *Site) Page(slug string) (Page, error) {
	if s == nil {
		return Page{}, ErrPageNotFound
	}
	normalized := NormalizeSlug(slug)
	if normalized == "" {
		normalized = "index"
	}
	page, ok := s.pages[normalized]
	if !ok {
		return Page{}, fmt.Errorf("site: %q: %w", normalized, ErrPageNotFound)
	}
	return page, nil
}

// Pages returns the page slugs in fixture order.
func (s *Site) Pages() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Run implements content.Engine. Queries listing ids return those items in
// the listed order, skipping unknown ids; queries naming a type return every
// item of that type; an empty query returns every item.
func (s *Site) Run(ctx context.Context, query content.Query) ([]content.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("site: site is nil")
	}

	if len(query.IDs) > 0 {
		out := make([]content.Item, 0, len(query.IDs))
		for _, id := range query.IDs {
			if item, ok := s.byID[id]; ok {
				out = append(out, item)
			}
		}
		return out, nil
	}

	out := make([]content.Item, 0, len(s.items))
	for _, item := range s.items {
		if query.Type != "" && item.Type != query.Type {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Fields returns a copy of the fixture's per-item field values.
func (s *Site) Fields() map[int64]map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[int64]map[string]any, len(s.fields))
	for id, values := range s.fields {
		copied := make(map[string]any, len(values))
		for name, value := range values {
			copied[name] = value
		}
		out[id] = copied
	}
	return out
}

// FieldSetter receives fixture fields, for example a fields.Map.
type FieldSetter interface {
	Set(id int64, name string, value any)
}

// SeedFields copies every fixture field into dst.
func (s *Site) SeedFields(dst FieldSetter) {
	if s == nil || dst == nil {
		return
	}
	for id, values := range s.fields {
		for name, value := range values {
			dst.Set(id, name, value)
		}
	}
}

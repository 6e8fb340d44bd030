// Package pongo renders page templates with pongo2. Templates are looked up in
// an optional override directory first and then in an fs.FS.
package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-faqschema/pkg/render/template"
	"github.com/goliatone/go-faqschema/pkg/sanitize"
)

// Extension is appended to template names that have none.
const Extension = ".tpl"

var registerFilters sync.Once

// Option configures an Engine.
type Option func(*Engine)

// WithBaseDir adds a directory whose templates override those of WithFS.
func WithBaseDir(dir string) Option {
	return func(e *Engine) {
		e.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS sets the fs.FS holding the templates.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// Engine renders pongo2 templates. Parsed templates are cached by name.
type Engine struct {
	baseDir string
	files   fs.FS

	set *pongo2.TemplateSet

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{cache: make(map[string]*pongo2.Template)}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}

	var loaders []pongo2.TemplateLoader
	if e.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(e.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %s: %w", e.baseDir, err)
		}
		loaders = append(loaders, loader)
	}
	if e.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(e.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("pongo: a template dir or fs.FS is required")
	}

	registerFilters.Do(func() {
		if !pongo2.FilterExists("plaintext") {
			_ = pongo2.RegisterFilter("plaintext", plainText)
		}
	})

	e.set = pongo2.NewSet("faqschema", loaders...)
	return e, nil
}

// RenderTemplate renders the template called name. Struct values in data are
// exposed to the template under their JSON field names.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is not initialized")
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}

	tmpl, err := e.load(name)
	if err != nil {
		return "", err
	}
	ctx, err := contextOf(data)
	if err != nil {
		return "", fmt.Errorf("pongo: %s: %w", name, err)
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", name, err)
	}
	return out, nil
}

func (e *Engine) load(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load %s: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

// contextOf flattens data to its JSON shape.
func contextOf(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("template data must be an object, got %T", data)
	}
	return pongo2.Context(wholeNumbers(values).(map[string]any)), nil
}

// wholeNumbers turns integral JSON numbers back into ints so they print
// without a decimal part.
func wholeNumbers(value any) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int(v)
		}
	case map[string]any:
		for key, item := range v {
			v[key] = wholeNumbers(item)
		}
	case []any:
		for i, item := range v {
			v[i] = wholeNumbers(item)
		}
	}
	return value
}

// plainText strips markup the same way the structured data does.
func plainText(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(sanitize.StripMarkup(in.String())), nil
}

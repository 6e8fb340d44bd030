// Package page renders site pages. Each Render call is one render cycle: the
// page's content queries run through the pipeline's post-query hooks, the page
// template renders the results, and the pre-output hooks fill the footer.
package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/content"
	"github.com/goliatone/go-faqschema/pkg/render"
	"github.com/goliatone/go-faqschema/pkg/render/template"
	"github.com/goliatone/go-faqschema/pkg/render/template/pongo"
	"github.com/goliatone/go-faqschema/pkg/site"
)

// DefaultTemplate is the template name used when none is configured.
const DefaultTemplate = "page"

// Section is the result of one page query as the template sees it.
type Section struct {
	Name  string         `json:"name"`
	Items []content.Item `json:"items"`
}

// Renderer renders pages of a site through a render pipeline.
type Renderer struct {
	site      *site.Site
	pipeline  *render.Pipeline
	templates template.TemplateRenderer
	template  string
	logger    *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplates replaces the template engine. The default engine loads the
// embedded templates.
func WithTemplates(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// WithTemplateName selects the page template to render.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.template = name
		}
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRenderer creates a page renderer. A nil pipeline renders pages without
// extensions.
func NewRenderer(s *site.Site, pipeline *render.Pipeline, options ...Option) (*Renderer, error) {
	if s == nil {
		return nil, errors.New("page: site is required")
	}
	if pipeline == nil {
		pipeline = render.NewPipeline()
	}

	r := &Renderer{
		site:     s,
		pipeline: pipeline,
		template: DefaultTemplate,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := pongo.New(pongo.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("page: default templates: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Render renders the page registered under slug to w. Nothing is written when
// rendering fails.
func (r *Renderer) Render(ctx context.Context, slug string, w io.Writer) error {
	out, err := r.RenderPage(ctx, slug)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("page: write %q: %w", slug, err)
	}
	return nil
}

// RenderPage renders the page registered under slug and returns the output.
func (r *Renderer) RenderPage(ctx context.Context, slug string) ([]byte, error) {
	pg, err := r.site.Page(slug)
	if err != nil {
		return nil, err
	}

	cycle := r.pipeline.Begin(ctx)
	sections, err := r.runQueries(ctx, cycle, pg)
	if err != nil {
		return nil, err
	}

	var footer bytes.Buffer
	cycle.Finish(ctx, &footer)

	data := map[string]any{
		"site":     r.site.Name,
		"page":     map[string]any{"slug": pg.Slug, "title": pg.Title},
		"sections": sections,
		"footer":   footer.String(),
	}
	rendered, err := r.templates.RenderTemplate(r.template, data)
	if err != nil {
		return nil, fmt.Errorf("page: render %q: %w", pg.Slug, err)
	}

	r.logger.Debug("page rendered",
		zap.String("slug", pg.Slug),
		zap.Int("queries", cycle.Queries()),
		zap.Int("bytes", len(rendered)),
	)
	return []byte(rendered), nil
}

// Footer runs the page queries and returns only the pre-output hook output,
// without rendering the page template.
func (r *Renderer) Footer(ctx context.Context, slug string) (string, error) {
	pg, err := r.site.Page(slug)
	if err != nil {
		return "", err
	}

	cycle := r.pipeline.Begin(ctx)
	if _, err := r.runQueries(ctx, cycle, pg); err != nil {
		return "", err
	}

	var footer bytes.Buffer
	cycle.Finish(ctx, &footer)
	return footer.String(), nil
}

func (r *Renderer) runQueries(ctx context.Context, cycle *render.Cycle, pg site.Page) ([]Section, error) {
	sections := make([]Section, 0, len(pg.Queries))
	for _, query := range pg.Queries {
		items, err := cycle.Query(ctx, r.site, query)
		if err != nil {
			return nil, fmt.Errorf("page: %q: %w", pg.Slug, err)
		}
		sections = append(sections, Section{Name: query.Name, Items: items})
	}
	return sections, nil
}

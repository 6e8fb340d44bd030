// Package faqschema aggregates FAQ items seen while a page renders into one
// schema.org FAQPage JSON-LD block.
//
// Quick start:
//
//	pipeline := render.NewPipeline()
//	store := fields.NewMap()
//	if _, err := faqschema.Register(pipeline, store); err != nil {
//		return err
//	}
//	cycle := pipeline.Begin(ctx)
//	items = cycle.Results(ctx, items) // once per content query
//	cycle.Finish(ctx, w)              // once, near the end of the page
package faqschema

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/faq"
	"github.com/goliatone/go-faqschema/pkg/fields"
	"github.com/goliatone/go-faqschema/pkg/page"
	"github.com/goliatone/go-faqschema/pkg/render"
	"github.com/goliatone/go-faqschema/pkg/sanitize"
)

// Extension is the render pipeline extension emitting the FAQPage block.
type Extension = faq.Extension

// Option configures the FAQ extension.
type Option = faq.Option

// Register adds the FAQ extension to pipeline, reading question/answer text
// from store.
func Register(pipeline *render.Pipeline, store fields.Store, options ...Option) (*Extension, error) {
	return faq.Register(pipeline, store, options...)
}

// NewExtension creates the FAQ extension without registering it.
func NewExtension(store fields.Store, options ...Option) *Extension {
	return faq.NewExtension(store, options...)
}

// WithLogger forwards a logger for debug diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return faq.WithLogger(logger)
}

// WithPriority overrides the late pipeline slot of the FAQ output.
func WithPriority(priority int) Option {
	return faq.WithPriority(priority)
}

// WithSanitizer replaces the markup stripper.
func WithSanitizer(fn sanitize.Func) Option {
	return faq.WithSanitizer(fn)
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the page package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

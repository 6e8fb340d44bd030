package faq

import (
	"context"
	"io"

	"github.com/goliatone/go-faqschema/pkg/content"
	"github.com/goliatone/go-faqschema/pkg/fields"
	"github.com/goliatone/go-faqschema/pkg/render"
)

const (
	// Name is the pipeline registration name of the FAQ extension.
	Name = "faq-schema"
	// DefaultPriority runs the FAQ output late in the page, after other
	// pre-output hooks at the default slot.
	DefaultPriority = 100
)

// Extension collects FAQ items from every query of a render cycle and emits
// the FAQPage block when the cycle finishes.
type Extension struct {
	emitter *Emitter
	cfg     config
}

// Ensure Extension implements the render.Extension interface.
var _ render.Extension = (*Extension)(nil)

// NewExtension creates the extension reading fields from store.
func NewExtension(store fields.Store, options ...Option) *Extension {
	cfg := newConfig(options...)
	return &Extension{
		emitter: &Emitter{store: store, cfg: cfg},
		cfg:     cfg,
	}
}

// Register adds a new Extension to pipeline at its configured priority.
func Register(pipeline *render.Pipeline, store fields.Store, options ...Option) (*Extension, error) {
	ext := NewExtension(store, options...)
	if err := pipeline.Register(ext, render.WithPriority(ext.Priority())); err != nil {
		return nil, err
	}
	return ext, nil
}

// Name implements render.Extension.
func (x *Extension) Name() string {
	return Name
}

// Priority returns the pipeline slot the extension registers at.
func (x *Extension) Priority() int {
	return x.cfg.priority
}

// Begin implements render.Extension. Each cycle gets its own accumulator.
func (x *Extension) Begin(context.Context) render.Hooks {
	acc := NewAccumulator()
	return render.Hooks{
		PostQuery: func(_ context.Context, items []content.Item) []content.Item {
			return acc.Collect(items)
		},
		PreOutput: func(ctx context.Context, w io.Writer) {
			x.emitter.Finalize(ctx, acc, w)
		},
	}
}

package render

import (
	"context"
	"io"

	"github.com/goliatone/go-faqschema/pkg/content"
)

// DefaultPriority is the ordering slot extensions get when none is given.
// Lower values run first.
const DefaultPriority = 10

// PostQueryFunc receives the items of a completed content query and returns
// the items downstream rendering should see.
type PostQueryFunc func(ctx context.Context, items []content.Item) []content.Item

// PreOutputFunc writes late page output, once per render cycle, after the main
// page content has been produced.
type PreOutputFunc func(ctx context.Context, w io.Writer)

// Hooks are the callbacks an extension contributes to a single render cycle.
// Either field may be nil.
type Hooks struct {
	PostQuery PostQueryFunc
	PreOutput PreOutputFunc
}

// Extension plugs into the render pipeline. Begin is called at the start of
// every render cycle; per-cycle state belongs in the closures it returns.
type Extension interface {
	Name() string
	Begin(ctx context.Context) Hooks
}

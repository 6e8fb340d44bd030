package content

import "context"

// TypeFAQ is the type discriminator of items that carry question/answer
// fields.
const TypeFAQ = "faq"

// Item is a single result of a content query.
type Item struct {
	ID    int64  `json:"id" yaml:"id"`
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Slug  string `json:"slug,omitempty" yaml:"slug,omitempty"`
}

// IsFAQ reports whether the item qualifies for FAQ aggregation.
func (i Item) IsFAQ() bool {
	return i.Type == TypeFAQ
}

// Query describes a named content query declared by a page.
type Query struct {
	Name string  `json:"name" yaml:"name"`
	IDs  []int64 `json:"ids,omitempty" yaml:"ids,omitempty"`
	Type string  `json:"type,omitempty" yaml:"type,omitempty"`
}

// Engine runs content queries. Implementations return items in the order the
// page should display them.
type Engine interface {
	Run(ctx context.Context, query Query) ([]Item, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, query Query) ([]Item, error)

// Run implements Engine.
func (fn EngineFunc) Run(ctx context.Context, query Query) ([]Item, error) {
	return fn(ctx, query)
}

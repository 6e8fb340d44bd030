package render

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/content"
)

type namedHooks struct {
	name string
	Hooks
}

// Cycle is one page render. It is not safe for concurrent use; a page render
// runs its queries and output sequentially.
type Cycle struct {
	hooks    []namedHooks
	logger   *zap.Logger
	queries  int
	finished bool
}

// Query runs a content query through engine and passes the result through
// every post-query hook.
func (c *Cycle) Query(ctx context.Context, engine content.Engine, query content.Query) ([]content.Item, error) {
	if engine == nil {
		return nil, fmt.Errorf("render: content engine is required")
	}
	items, err := engine.Run(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("render: query %q: %w", query.Name, err)
	}
	return c.Results(ctx, items), nil
}

// Results passes the items of a completed query through the post-query hooks
// and returns what the last hook returned.
func (c *Cycle) Results(ctx context.Context, items []content.Item) []content.Item {
	c.queries++
	for _, h := range c.hooks {
		if h.PostQuery == nil {
			continue
		}
		items = h.PostQuery(ctx, items)
	}
	return items
}

// Queries reports how many query results went through the cycle.
func (c *Cycle) Queries() int {
	return c.queries
}

// Finish runs the pre-output hooks against w. Only the first call has an
// effect.
func (c *Cycle) Finish(ctx context.Context, w io.Writer) {
	if c.finished {
		c.logger.Debug("render cycle already finished")
		return
	}
	c.finished = true

	for _, h := range c.hooks {
		if h.PreOutput == nil {
			continue
		}
		h.PreOutput(ctx, w)
	}
	c.logger.Debug("render cycle finished", zap.Int("queries", c.queries))
}

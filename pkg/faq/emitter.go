package faq

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-faqschema/pkg/fields"
	"github.com/goliatone/go-faqschema/pkg/jsonld"
)

// Emitter turns collected ids into the FAQPage script block.
type Emitter struct {
	store fields.Store
	cfg   config
}

// NewEmitter creates an Emitter reading question/answer text from store.
func NewEmitter(store fields.Store, options ...Option) *Emitter {
	return &Emitter{
		store: store,
		cfg:   newConfig(options...),
	}
}

// Document builds the FAQPage for the accumulated ids. Items missing either
// field are skipped. The returned document may be empty.
func (e *Emitter) Document(ctx context.Context, acc *Accumulator) *jsonld.FAQPage {
	doc := jsonld.NewFAQPage()
	if acc == nil {
		return doc
	}

	for _, id := range acc.ids {
		question := fields.Lookup(ctx, e.store, fields.Question, id)
		answer := fields.Lookup(ctx, e.store, fields.Answer, id)
		if question == "" || answer == "" {
			e.cfg.logger.Debug("faq item skipped: missing question or answer", zap.Int64("id", id))
			continue
		}
		doc.Add(e.cfg.sanitizer(question), e.cfg.sanitizer(answer))
	}
	return doc
}

// Render returns the script block for the accumulated ids, or "" when there is
// nothing valid to emit.
func (e *Emitter) Render(ctx context.Context, acc *Accumulator) string {
	if acc == nil || acc.Len() == 0 {
		return ""
	}

	doc := e.Document(ctx, acc)
	if doc.Len() == 0 {
		e.cfg.logger.Debug("faq schema suppressed: no complete entries", zap.Int("collected", acc.Len()))
		return ""
	}

	payload, err := jsonld.Marshal(doc)
	if err != nil {
		e.cfg.logger.Debug("faq schema suppressed: serialization failed", zap.Error(err))
		return ""
	}
	if e.cfg.validate {
		if err := jsonld.Validate(payload); err != nil {
			e.cfg.logger.Debug("faq schema suppressed: validation failed", zap.Error(err))
			return ""
		}
	}
	return jsonld.ScriptBlock(payload)
}

// Finalize writes the script block for the accumulated ids to w. It writes
// nothing when the set is empty, when no entry is complete, or when
// serialization fails. The accumulator is left as is.
func (e *Emitter) Finalize(ctx context.Context, acc *Accumulator, w io.Writer) {
	if w == nil {
		return
	}
	block := e.Render(ctx, acc)
	if block == "" {
		return
	}
	if _, err := io.WriteString(w, block); err != nil {
		e.cfg.logger.Debug("faq schema write failed", zap.Error(err))
	}
}

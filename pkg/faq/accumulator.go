package faq

import "github.com/goliatone/go-faqschema/pkg/content"

// Accumulator is the ordered, duplicate-free set of FAQ item ids collected
// during one render cycle. The zero value is ready to use.
type Accumulator struct {
	ids  []int64
	seen map[int64]struct{}
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Collect records the ids of faq items not seen before, in first-seen order,
// and returns items unchanged.
func (a *Accumulator) Collect(items []content.Item) []content.Item {
	for _, item := range items {
		a.add(item)
	}
	return items
}

// IDs returns a copy of the collected ids in first-seen order.
func (a *Accumulator) IDs() []int64 {
	if len(a.ids) == 0 {
		return nil
	}
	return append([]int64(nil), a.ids...)
}

// Len reports the number of collected ids.
func (a *Accumulator) Len() int {
	return len(a.ids)
}

func (a *Accumulator) add(item content.Item) {
	if !item.IsFAQ() {
		return
	}
	if a.seen == nil {
		a.seen = make(map[int64]struct{})
	}
	if _, ok := a.seen[item.ID]; ok {
		return
	}
	a.seen[item.ID] = struct{}{}
	a.ids = append(a.ids, item.ID)
}

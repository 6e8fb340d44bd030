// Package faq aggregates FAQ items seen while a page renders and emits one
// FAQPage structured-data block for the whole page.
//
// An Accumulator records the distinct ids of faq-typed items that pass through
// any content query of the render cycle. At the end of the cycle an Emitter
// reads the question/answer fields of those items, drops incomplete ones, and
// writes the JSON-LD script block. Every failure degrades to writing nothing;
// nothing is returned to the render pipeline.
//
// Extension wires both steps into a render.Pipeline with a fresh Accumulator
// per cycle.
package faq

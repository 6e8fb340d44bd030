package jsonld

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyDocument is returned when a document has no Question entries.
	ErrEmptyDocument = errors.New("jsonld: document has no entries")
	// ErrInvalidText is returned when a document value is not valid UTF-8.
	ErrInvalidText = errors.New("jsonld: text is not valid UTF-8")
)

const (
	blockStart = "\n<!-- FAQ Schema Markup Start -->\n"
	scriptOpen = `<script type="application/ld+json">`
	scriptEnd  = "</script>"
	blockEnd   = "\n<!-- FAQ Schema Markup End -->\n"
)

// Marshal serializes the document as compact JSON. Slashes and non-ASCII
// characters are written literally; '<' is escaped so no value can terminate
// the enclosing script element.
func Marshal(doc *FAQPage) ([]byte, error) {
	if doc.Len() == 0 {
		return nil, ErrEmptyDocument
	}
	for idx, entry := range doc.MainEntity {
		if !utf8.ValidString(entry.Name) || !utf8.ValidString(entry.AcceptedAnswer.Text) {
			return nil, fmt.Errorf("jsonld: mainEntity[%d]: %w", idx, ErrInvalidText)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("jsonld: encode: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	// Text arrives entity-decoded, so "&lt;/script&gt;" in a field is a raw
	// "</script>" here. "<" is the only character written escaped.
	return bytes.ReplaceAll(out, []byte("<"), []byte(`\u003c`)), nil
}

// ScriptBlock wraps a serialized document in the marker comments and the
// ld+json script element.
func ScriptBlock(payload []byte) string {
	var b bytes.Buffer
	b.Grow(len(blockStart) + len(scriptOpen) + len(payload) + len(scriptEnd) + len(blockEnd))
	b.WriteString(blockStart)
	b.WriteString(scriptOpen)
	b.Write(payload)
	b.WriteString(scriptEnd)
	b.WriteString(blockEnd)
	return b.String()
}

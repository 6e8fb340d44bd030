// Package sanitize turns stored rich text into the plain text structured-data
// consumers expect.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Func strips markup from a string.
type Func func(string) string

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripMarkup removes every HTML element from text. Script and style bodies are
// dropped with their tags; entities are decoded so the result is plain text.
func StripMarkup(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	cleaned := stripSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.SkipElementsContent("script", "style", "noscript", "template")
		stripPolicy = policy
	})
	return stripPolicy
}

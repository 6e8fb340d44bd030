// Package fields exposes the key/value store holding per-item custom fields
// such as the "question" and "answer" text of FAQ items.
package fields

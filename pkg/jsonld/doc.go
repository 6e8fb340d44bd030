// Package jsonld builds the schema.org FAQPage document and the script block
// that embeds it in a page.
//
// The document shape is fixed: a context, a type and an ordered list of
// Question entries. Serialization keeps forward slashes and non-ASCII text
// literal so the payload stays readable in page source.
package jsonld

// Command faqschema renders the pages of a site fixture and emits the FAQPage
// JSON-LD block collected while each page renders.
//
// Usage:
//
//	faqschema --site site.yaml render help
//	faqschema --site site.yaml schema checkout
//	faqschema -c faqschema.toml import
//	faqschema -c faqschema.toml serve
package main

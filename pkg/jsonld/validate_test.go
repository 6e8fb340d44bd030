package jsonld_test

import (
	"testing"

	"github.com/goliatone/go-faqschema/pkg/jsonld"
)

func TestValidateAcceptsMarshalledDocument(t *testing.T) {
	doc := jsonld.NewFAQPage()
	doc.Add("Q1", "A1")

	payload, err := jsonld.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := jsonld.Validate(payload); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cases := map[string]string{
		"empty mainEntity": `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[]}`,
		"wrong type":       `{"@context":"https://schema.org","@type":"WebPage","mainEntity":[{"@type":"Question","name":"Q","acceptedAnswer":{"@type":"Answer","text":"A"}}]}`,
		"missing answer":   `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[{"@type":"Question","name":"Q"}]}`,
		"numeric name":     `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[{"@type":"Question","name":1,"acceptedAnswer":{"@type":"Answer","text":"A"}}]}`,
		"not json":         `{"@context":`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if err := jsonld.Validate([]byte(payload)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

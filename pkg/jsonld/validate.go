package jsonld

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://go-faqschema.local/faqpage.schema.json"

//go:embed schema/faqpage.schema.json
var faqPageSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Validate checks a serialized document against the required FAQPage shape.
// It does not check schema.org conformance beyond those fields.
func Validate(payload []byte) error {
	schema, err := faqSchema()
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("jsonld: parse payload: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("jsonld: validate: %w", err)
	}
	return nil
}

func faqSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(faqPageSchema))
		if err != nil {
			schemaErr = fmt.Errorf("jsonld: parse schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("jsonld: add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("jsonld: compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

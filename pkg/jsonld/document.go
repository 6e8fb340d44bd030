package jsonld

const (
	// Context is the schema.org vocabulary the document refers to.
	Context = "https://schema.org"

	TypeFAQPage  = "FAQPage"
	TypeQuestion = "Question"
	TypeAnswer   = "Answer"
)

// FAQPage is the aggregated structured-data document for one page.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is one entry of FAQPage.MainEntity.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQPage returns an empty document.
func NewFAQPage() *FAQPage {
	return &FAQPage{
		Context:    Context,
		Type:       TypeFAQPage,
		MainEntity: []Question{},
	}
}

// Add appends a Question entry built from already sanitized text.
func (d *FAQPage) Add(question, answer string) {
	d.MainEntity = append(d.MainEntity, Question{
		Type: TypeQuestion,
		Name: question,
		AcceptedAnswer: Answer{
			Type: TypeAnswer,
			Text: answer,
		},
	})
}

// Len reports the number of Question entries.
func (d *FAQPage) Len() int {
	if d == nil {
		return 0
	}
	return len(d.MainEntity)
}

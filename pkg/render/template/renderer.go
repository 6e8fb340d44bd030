package template

// TemplateRenderer renders a named page template with the given data.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}

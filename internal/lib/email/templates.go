package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplatePersonRegistered corresponds to templates/person_registered.html
	TemplatePersonRegistered Template = "person_registered"
)

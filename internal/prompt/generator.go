// Package prompt builds the natural-language instruction sent to the
// analysis model.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Generator renders analysis prompts from a template.
type Generator struct {
	template *template.Template
	locale   string
}

// TermData holds everything the template needs for one term.
type TermData struct {
	Term   string
	Locale string // school system for the schoolYear label, e.g. "UK"
}

// NewGenerator creates a generator using the default template.
func NewGenerator(locale string) *Generator {
	if locale == "" {
		locale = "UK"
	}
	return &Generator{
		template: template.Must(template.New("prompt").Parse(defaultTemplate)),
		locale:   locale,
	}
}

// SetTemplate sets a custom prompt template.
func (g *Generator) SetTemplate(tmpl string) error {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	g.template = t
	return nil
}

// Locale returns the school system the generator asks for.
func (g *Generator) Locale() string {
	return g.locale
}

// Generate renders the prompt for term.
func (g *Generator) Generate(term string) (string, error) {
	data := TermData{
		Term:   term,
		Locale: g.locale,
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

const defaultTemplate = `Analyze the following word or phrase: "{{ .Term }}". Your response must be a single JSON object.

1. First, in the 'isValidTerm' field, determine if the term is a valid English word or a commonly recognized phrase. Set it to true or false.

2. Second, if 'isValidTerm' is false, provide a list of spelling 'suggestions'. If it is a valid term, 'suggestions' must be an empty array.

3. Third, proceed to the 'analyses' step.
  - If the term is valid, perform a full analysis.
  - If the term is invalid and has no suggestions (i.e., it's a made-up word), the 'analyses' array MUST be empty.

The analysis involves identifying if the term has one or more distinct common meanings. For each meaning, provide:
1. A short, clear 'definition'.
2. A detailed 'analysis' object.

The 'analysis' object must include:
- 'readingAge': A number.
- 'schoolYear': The corresponding {{ .Locale }} school year.
- 'ageGroup': The general age group.
- 'profession': The relevant profession(s), or "N/A".
- 'pearsonSyllabus': If the term is a business or finance term, identify the Pearson business syllabus it appears on, based on publicly available specifications. If it appears on multiple syllabi (e.g., GCSE and A-Level), return only the syllabus for the lowest/earliest school level (e.g., choose "Pearson GCSE Business" over "Pearson A-Level Business"). If you cannot confidently verify its presence on a syllabus, return "Not Verifiable". If the term is not business-related, return "N/A".

If the term has one meaning, the 'analyses' array will have one object. If multiple, an object for each.`

package analysis

import "fmt"

// SchemaType is the JSON type of a schema node.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral description of the expected reply shape.
// Providers translate it into their own structured-output declaration.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`

	// Order keeps property output stable; maps have no order.
	Order []string `json:"-"`
}

// DefaultLocale is the school system used for school year labels.
const DefaultLocale = "UK"

// ResultSchema describes AnalysisResult. Locale names the school system the
// schoolYear label is expressed in.
func ResultSchema(locale string) *Schema {
	if locale == "" {
		locale = DefaultLocale
	}
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"readingAge": {
				Type:        TypeNumber,
				Description: "The estimated reading age required to understand the term. Should be a single number.",
			},
			"schoolYear": {
				Type:        TypeString,
				Description: fmt.Sprintf(`The corresponding %s school year group (e.g., "UK Year 8", "A-Level", "University Level").`, locale),
			},
			"ageGroup": {
				Type:        TypeString,
				Description: `The general age of a person expected to understand (e.g., "12-13 years old", "18+").`,
			},
			"profession": {
				Type:        TypeString,
				Description: `If it is a technical term, the profession(s) that would typically use it. Otherwise, return "N/A".`,
			},
			"pearsonSyllabus": {
				Type: TypeString,
				Description: `If the term is a business or finance term, identify the Pearson business syllabus for the lowest school level it appears on (e.g., choose GCSE over A-Level). ` +
					`Base this on verified, publicly available syllabus documents. If its presence cannot be verified, return "Not Verifiable". If the term is not a business term, return "N/A".`,
			},
		},
		Required: []string{"readingAge", "schoolYear", "ageGroup", "profession", "pearsonSyllabus"},
		Order:    []string{"readingAge", "schoolYear", "ageGroup", "profession", "pearsonSyllabus"},
	}
}

// ResponseSchema describes FullAnalysisResponse.
func ResponseSchema(locale string) *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"isValidTerm": {
				Type:        TypeBoolean,
				Description: "Is the original term a valid English word or a commonly recognized phrase?",
			},
			"suggestions": {
				Type:        TypeArray,
				Items:       &Schema{Type: TypeString},
				Description: "If the term is not valid, provide a list of spelling corrections. If valid, return an empty array.",
			},
			"analyses": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"definition": {
							Type:        TypeString,
							Description: "A brief definition explaining the context of the term's specific meaning.",
						},
						"analysis": ResultSchema(locale),
					},
					Required: []string{"definition", "analysis"},
					Order:    []string{"definition", "analysis"},
				},
				Description: "List of analyses for each meaning. If the term is invalid, this can be an empty array.",
			},
		},
		Required: []string{"isValidTerm", "suggestions", "analyses"},
		Order:    []string{"isValidTerm", "suggestions", "analyses"},
	}
}

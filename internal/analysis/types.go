// Package analysis requests term analyses from a generative model and routes
// the structured reply to a presentation outcome.
package analysis

// AnalysisResult holds the metrics produced for one meaning of a term.
type AnalysisResult struct {
	ReadingAge      float64 `json:"readingAge"`
	SchoolYear      string  `json:"schoolYear"`      // e.g. "UK Year 8", "A-Level"
	AgeGroup        string  `json:"ageGroup"`        // e.g. "12-13 years old"
	Profession      string  `json:"profession"`      // free text or "N/A"
	PearsonSyllabus string  `json:"pearsonSyllabus"` // syllabus, "N/A" or "Not Verifiable"
}

// TermAnalysis pairs a definition disambiguating one meaning with its metrics.
type TermAnalysis struct {
	Definition string         `json:"definition"`
	Analysis   AnalysisResult `json:"analysis"`
}

// FullAnalysisResponse is the complete structured reply for one term.
type FullAnalysisResponse struct {
	IsValidTerm bool           `json:"isValidTerm"`
	Suggestions []string       `json:"suggestions"`
	Analyses    []TermAnalysis `json:"analyses"`
}

// Syllabus placeholders returned by the model.
const (
	NotApplicable = "N/A"
	NotVerifiable = "Not Verifiable"
)

package analysis

// OutcomeKind tags which presentation an Outcome selects.
type OutcomeKind int

const (
	OutcomeSuggestions OutcomeKind = iota + 1
	OutcomeFinalResult
	OutcomeMeaningChoice
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuggestions:
		return "suggestions"
	case OutcomeFinalResult:
		return "final_result"
	case OutcomeMeaningChoice:
		return "meaning_choice"
	default:
		return "unknown"
	}
}

// Outcome is the single presentation chosen for a parsed reply. Only the
// payload matching Kind is set.
type Outcome struct {
	Kind OutcomeKind
	Term string

	suggestions []string
	result      AnalysisResult
	meanings    []TermAnalysis
}

// Suggestions returns the spelling suggestions of an OutcomeSuggestions.
func (o Outcome) Suggestions() []string {
	if o.Kind != OutcomeSuggestions {
		return nil
	}
	return o.suggestions
}

// Result returns the analysis of an OutcomeFinalResult.
func (o Outcome) Result() (AnalysisResult, bool) {
	if o.Kind != OutcomeFinalResult {
		return AnalysisResult{}, false
	}
	return o.result, true
}

// Meanings returns the candidate meanings of an OutcomeMeaningChoice, in the
// order the service returned them.
func (o Outcome) Meanings() []TermAnalysis {
	if o.Kind != OutcomeMeaningChoice {
		return nil
	}
	return o.meanings
}

// SuggestionsOutcome builds an OutcomeSuggestions.
func SuggestionsOutcome(term string, suggestions []string) Outcome {
	return Outcome{Kind: OutcomeSuggestions, Term: term, suggestions: append([]string(nil), suggestions...)}
}

// FinalResultOutcome builds an OutcomeFinalResult.
func FinalResultOutcome(term string, result AnalysisResult) Outcome {
	return Outcome{Kind: OutcomeFinalResult, Term: term, result: result}
}

// MeaningChoiceOutcome builds an OutcomeMeaningChoice.
func MeaningChoiceOutcome(term string, meanings []TermAnalysis) Outcome {
	return Outcome{Kind: OutcomeMeaningChoice, Term: term, meanings: append([]TermAnalysis(nil), meanings...)}
}

// Route maps a parsed reply to exactly one Outcome. Suggestions win over
// analyses when the term is flagged invalid; a single analysis skips the
// meaning choice. A reply carrying neither yields an ErrNoAnalysis error.
func Route(term string, resp FullAnalysisResponse) (Outcome, error) {
	switch {
	case !resp.IsValidTerm && len(resp.Suggestions) > 0:
		return SuggestionsOutcome(term, resp.Suggestions), nil
	case len(resp.Analyses) == 1:
		return FinalResultOutcome(term, resp.Analyses[0].Analysis), nil
	case len(resp.Analyses) > 1:
		return MeaningChoiceOutcome(term, resp.Analyses), nil
	default:
		return Outcome{}, newNoAnalysisError(term)
	}
}

// Package session holds the per-user analysis state machine. A Session is
// a value: every transition returns a replacement, never a partial edit.
package session

import (
	"strings"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/google/uuid"
)

// Phase is the state of the current analysis cycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	ShowingError
	ShowingSuggestions
	ShowingMeaningChoice
	ShowingFinalResult
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case ShowingError:
		return "error"
	case ShowingSuggestions:
		return "suggestions"
	case ShowingMeaningChoice:
		return "meaning_choice"
	case ShowingFinalResult:
		return "final_result"
	default:
		return "unknown"
	}
}

// Session is the outcome state of one analysis cycle.
type Session struct {
	phase     Phase
	term      string
	requestID uuid.UUID

	outcome analysis.Outcome
	result  analysis.AnalysisResult
	chosen  int // meaning index behind result, -1 when not picked from a list
	err     error
}

// New returns an idle session.
func New() Session {
	return Session{phase: Idle, chosen: -1}
}

// Phase returns the current phase.
func (s Session) Phase() Phase { return s.phase }

// Term returns the submitted term of the current cycle.
func (s Session) Term() string { return s.term }

// RequestID identifies the in-flight or last request.
func (s Session) RequestID() uuid.UUID { return s.requestID }

// Err returns the error shown in ShowingError.
func (s Session) Err() error { return s.err }

// Suggestions returns the suggestions shown in ShowingSuggestions.
func (s Session) Suggestions() []string {
	if s.phase != ShowingSuggestions {
		return nil
	}
	return s.outcome.Suggestions()
}

// Meanings returns the candidates shown in ShowingMeaningChoice.
func (s Session) Meanings() []analysis.TermAnalysis {
	if s.phase != ShowingMeaningChoice {
		return nil
	}
	return s.outcome.Meanings()
}

// Result returns the analysis shown in ShowingFinalResult.
func (s Session) Result() (analysis.AnalysisResult, bool) {
	if s.phase != ShowingFinalResult {
		return analysis.AnalysisResult{}, false
	}
	return s.result, true
}

// Busy reports whether a request is in flight.
func (s Session) Busy() bool { return s.phase == Loading }

// Submit starts a new cycle for term. It reports false, leaving the session
// unchanged, while a request is in flight. A blank term ends the cycle at
// ShowingError with analysis.ErrEmptyInput and must not be sent.
func (s Session) Submit(term string) (Session, bool) {
	if s.Busy() {
		return s, false
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return Session{phase: ShowingError, chosen: -1, err: analysis.EmptyInputError()}, false
	}

	return Session{
		phase:     Loading,
		term:      term,
		requestID: uuid.New(),
		chosen:    -1,
	}, true
}

// Resolve completes the in-flight request identified by id with outcome.
// Replies for any other request are ignored.
func (s Session) Resolve(id uuid.UUID, outcome analysis.Outcome) Session {
	if !s.Busy() || id != s.requestID {
		return s
	}

	next := Session{term: s.term, requestID: s.requestID, outcome: outcome, chosen: -1}
	switch outcome.Kind {
	case analysis.OutcomeSuggestions:
		next.phase = ShowingSuggestions
	case analysis.OutcomeMeaningChoice:
		next.phase = ShowingMeaningChoice
	case analysis.OutcomeFinalResult:
		next.phase = ShowingFinalResult
		next.result, _ = outcome.Result()
	default:
		next.phase = ShowingError
		next.outcome = analysis.Outcome{}
		next.err = &analysis.Error{Kind: analysis.KindNoAnalysis, Message: "An unknown error occurred."}
	}
	return next
}

// Fail completes the in-flight request identified by id with err.
func (s Session) Fail(id uuid.UUID, err error) Session {
	if !s.Busy() || id != s.requestID {
		return s
	}
	return Session{phase: ShowingError, term: s.term, requestID: s.requestID, chosen: -1, err: err}
}

// SelectSuggestion re-submits suggestion i as a new term.
func (s Session) SelectSuggestion(i int) (Session, bool) {
	suggestions := s.Suggestions()
	if i < 0 || i >= len(suggestions) {
		return s, false
	}
	return s.Submit(suggestions[i])
}

// SelectMeaning commits meaning i as the final result without a new request.
func (s Session) SelectMeaning(i int) (Session, bool) {
	meanings := s.Meanings()
	if i < 0 || i >= len(meanings) {
		return s, false
	}
	return Session{
		phase:     ShowingFinalResult,
		term:      s.term,
		requestID: s.requestID,
		outcome:   s.outcome,
		result:    meanings[i].Analysis,
		chosen:    i,
	}, true
}

// ChosenDefinition returns the definition of the meaning picked from a
// meaning list, if the final result came from one.
func (s Session) ChosenDefinition() string {
	if s.phase != ShowingFinalResult || s.chosen < 0 {
		return ""
	}
	meanings := s.outcome.Meanings()
	if s.chosen >= len(meanings) {
		return ""
	}
	return meanings[s.chosen].Definition
}

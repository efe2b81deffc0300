package session

import (
	"errors"
	"testing"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(age float64) analysis.AnalysisResult {
	return analysis.AnalysisResult{
		ReadingAge:      age,
		SchoolYear:      "UK Year 9",
		AgeGroup:        "13-14 years old",
		Profession:      "Finance",
		PearsonSyllabus: "Pearson GCSE Business",
	}
}

func loading(t *testing.T, term string) Session {
	t.Helper()
	s, ok := New().Submit(term)
	require.True(t, ok)
	require.Equal(t, Loading, s.Phase())
	return s
}

func TestSubmit_BlankTermNeverLoads(t *testing.T) {
	t.Parallel()

	for _, term := range []string{"", "   ", "\t"} {
		s, ok := New().Submit(term)
		assert.False(t, ok)
		assert.Equal(t, ShowingError, s.Phase())
		assert.ErrorIs(t, s.Err(), analysis.ErrEmptyInput)
		assert.Equal(t, uuid.Nil, s.RequestID())
	}
}

func TestSubmit_TrimsAndAssignsRequestID(t *testing.T) {
	t.Parallel()

	s := loading(t, "  leverage ")
	assert.Equal(t, "leverage", s.Term())
	assert.NotEqual(t, uuid.Nil, s.RequestID())
	assert.True(t, s.Busy())
}

func TestSubmit_IgnoredWhileLoading(t *testing.T) {
	t.Parallel()

	first := loading(t, "bank")
	second, ok := first.Submit("leverage")

	assert.False(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, "bank", second.Term())
}

func TestSubmit_ClearsPriorOutcome(t *testing.T) {
	t.Parallel()

	s := loading(t, "leverage")
	s = s.Resolve(s.RequestID(), analysis.FinalResultOutcome("leverage", result(15)))
	require.Equal(t, ShowingFinalResult, s.Phase())

	next, ok := s.Submit("bank")
	require.True(t, ok)
	_, has := next.Result()
	assert.False(t, has)
	assert.Nil(t, next.Suggestions())
	assert.Nil(t, next.Meanings())
	assert.NoError(t, next.Err())
	assert.NotEqual(t, s.RequestID(), next.RequestID())
}

func TestResolve_MapsOutcomeToPhase(t *testing.T) {
	t.Parallel()

	s := loading(t, "xqzpl")
	got := s.Resolve(s.RequestID(), analysis.SuggestionsOutcome("xqzpl", []string{"equal"}))
	assert.Equal(t, ShowingSuggestions, got.Phase())
	assert.Equal(t, []string{"equal"}, got.Suggestions())

	s = loading(t, "bank")
	meanings := []analysis.TermAnalysis{
		{Definition: "A financial institution", Analysis: result(8)},
		{Definition: "The land alongside a river", Analysis: result(7)},
	}
	got = s.Resolve(s.RequestID(), analysis.MeaningChoiceOutcome("bank", meanings))
	assert.Equal(t, ShowingMeaningChoice, got.Phase())
	assert.Equal(t, meanings, got.Meanings())

	s = loading(t, "leverage")
	got = s.Resolve(s.RequestID(), analysis.FinalResultOutcome("leverage", result(15)))
	assert.Equal(t, ShowingFinalResult, got.Phase())
	res, ok := got.Result()
	require.True(t, ok)
	assert.Equal(t, result(15), res)
	assert.Empty(t, got.ChosenDefinition())
}

func TestResolve_IgnoresStaleReply(t *testing.T) {
	t.Parallel()

	s := loading(t, "bank")
	got := s.Resolve(uuid.New(), analysis.FinalResultOutcome("bank", result(8)))
	assert.Equal(t, s, got)

	idle := New()
	assert.Equal(t, idle, idle.Resolve(uuid.New(), analysis.FinalResultOutcome("bank", result(8))))
}

func TestFail_ShowsError(t *testing.T) {
	t.Parallel()

	s := loading(t, "leverage")
	cause := errors.New("quota exceeded")
	got := s.Fail(s.RequestID(), cause)

	assert.Equal(t, ShowingError, got.Phase())
	assert.ErrorIs(t, got.Err(), cause)
	assert.False(t, got.Busy())

	assert.Equal(t, got, got.Fail(got.RequestID(), errors.New("late")))
}

func TestSelectSuggestion_ResubmitsSuggestion(t *testing.T) {
	t.Parallel()

	s := loading(t, "xqzpl")
	s = s.Resolve(s.RequestID(), analysis.SuggestionsOutcome("xqzpl", []string{"equal", "equip"}))

	next, ok := s.SelectSuggestion(1)
	require.True(t, ok)
	assert.Equal(t, Loading, next.Phase())
	assert.Equal(t, "equip", next.Term())
	assert.NotEqual(t, s.RequestID(), next.RequestID())
	assert.Nil(t, next.Suggestions())

	_, ok = s.SelectSuggestion(5)
	assert.False(t, ok)
}

func TestSelectMeaning_NoNewRequest(t *testing.T) {
	t.Parallel()

	s := loading(t, "bank")
	meanings := []analysis.TermAnalysis{
		{Definition: "A financial institution", Analysis: result(8)},
		{Definition: "The land alongside a river", Analysis: result(7)},
	}
	s = s.Resolve(s.RequestID(), analysis.MeaningChoiceOutcome("bank", meanings))

	next, ok := s.SelectMeaning(1)
	require.True(t, ok)
	assert.Equal(t, ShowingFinalResult, next.Phase())
	assert.Equal(t, s.RequestID(), next.RequestID())
	res, _ := next.Result()
	assert.Equal(t, result(7), res)
	assert.Equal(t, "The land alongside a river", next.ChosenDefinition())

	_, ok = s.SelectMeaning(-1)
	assert.False(t, ok)
	_, ok = next.SelectMeaning(0)
	assert.False(t, ok, "meaning list is gone once a result is shown")
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "error", ShowingError.String())
	assert.Equal(t, "suggestions", ShowingSuggestions.String())
	assert.Equal(t, "meaning_choice", ShowingMeaningChoice.String())
	assert.Equal(t, "final_result", ShowingFinalResult.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

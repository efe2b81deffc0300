// Package views provides the individual views for the terminal UI.
package views

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/f3rmion/readage/internal/clipboard"
	"github.com/f3rmion/readage/internal/session"
)

// Analyzer runs one analysis cycle for a term.
type Analyzer interface {
	Run(ctx context.Context, term string) (analysis.Outcome, error)
}

// AnalysisDoneMsg carries the reply for the request identified by ID.
type AnalysisDoneMsg struct {
	ID      uuid.UUID
	Outcome analysis.Outcome
	Err     error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// AnalyzeModel is the term analysis view: an input field above whatever the
// current session phase shows.
type AnalyzeModel struct {
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	analyzer Analyzer
	session  session.Session
	log      *slog.Logger

	focus  focusArea
	cursor int // highlighted suggestion or meaning

	copied  bool
	copyErr error

	width  int
	height int
}

// NewAnalyzeModel creates the analysis view. logger may be nil.
func NewAnalyzeModel(a Analyzer, logger *slog.Logger) AnalyzeModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a word or phrase..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorAccent)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return AnalyzeModel{
		input:    ti,
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
		analyzer: a,
		session:  session.New(),
		log:      logger.With("component", "tui"),
	}
}

// SetSize updates the view dimensions.
func (m *AnalyzeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Session returns the current analysis state.
func (m AnalyzeModel) Session() session.Session {
	return m.session
}

// Init starts the cursor blinking.
func (m AnalyzeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m AnalyzeModel) Update(msg tea.Msg) (AnalyzeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focus == focusResults {
			return m.updateResults(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit(m.input.Value())
		case key.Matches(msg, m.keys.Focus):
			if m.listLen() > 0 {
				m.focusResults()
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m.copyResult()
		case key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		}

	case AnalysisDoneMsg:
		return m.finish(msg), nil

	case spinner.TickMsg:
		if !m.session.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AnalyzeModel) updateResults(msg tea.KeyMsg) (AnalyzeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Pick):
		return m.choose(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Submit):
		return m.choose(m.cursor)
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Back):
		m.focusInput()
	}
	return m, nil
}

// submit starts a cycle for term. It does nothing while a request is in
// flight; a blank term shows the validation message without a request.
func (m AnalyzeModel) submit(term string) (AnalyzeModel, tea.Cmd) {
	next, ok := m.session.Submit(term)
	if !ok {
		m.session = next
		return m, nil
	}
	return m.start(next)
}

func (m AnalyzeModel) start(next session.Session) (AnalyzeModel, tea.Cmd) {
	m.session = next
	m.cursor = 0
	m.copied = false
	m.copyErr = nil
	m.focusInput()

	m.log.Info("analysis requested",
		slog.String("term", next.Term()),
		slog.String("request_id", next.RequestID().String()),
	)
	return m, tea.Batch(m.spinner.Tick, m.request(next.RequestID(), next.Term()))
}

func (m AnalyzeModel) request(id uuid.UUID, term string) tea.Cmd {
	a := m.analyzer
	return func() tea.Msg {
		out, err := a.Run(context.Background(), term)
		return AnalysisDoneMsg{ID: id, Outcome: out, Err: err}
	}
}

func (m AnalyzeModel) finish(msg AnalysisDoneMsg) AnalyzeModel {
	if !m.session.Busy() || msg.ID != m.session.RequestID() {
		m.log.Debug("stale analysis reply dropped", slog.String("request_id", msg.ID.String()))
		return m
	}

	if msg.Err != nil {
		m.session = m.session.Fail(msg.ID, msg.Err)
		m.log.Warn("analysis failed",
			slog.String("term", m.session.Term()),
			slog.String("kind", analysis.KindOf(msg.Err).String()),
		)
	} else {
		m.session = m.session.Resolve(msg.ID, msg.Outcome)
		m.log.Info("analysis resolved",
			slog.String("term", m.session.Term()),
			slog.String("outcome", msg.Outcome.Kind.String()),
		)
	}

	m.cursor = 0
	if m.listLen() > 0 {
		m.focusResults()
	}
	return m
}

// choose selects suggestion or meaning i, depending on the phase.
func (m AnalyzeModel) choose(i int) (AnalyzeModel, tea.Cmd) {
	switch m.session.Phase() {
	case session.ShowingSuggestions:
		next, ok := m.session.SelectSuggestion(i)
		if !ok {
			return m, nil
		}
		m.input.SetValue(next.Term())
		m.input.CursorEnd()
		return m.start(next)

	case session.ShowingMeaningChoice:
		next, ok := m.session.SelectMeaning(i)
		if !ok {
			return m, nil
		}
		m.session = next
		m.focusInput()
	}
	return m, nil
}

func (m AnalyzeModel) copyResult() (AnalyzeModel, tea.Cmd) {
	r, ok := m.session.Result()
	if !ok {
		return m, nil
	}

	text := clipboard.FormatResult(m.session.Term(), m.session.ChosenDefinition(), r)
	if err := clipboard.Write(text); err != nil {
		m.log.Warn("copy failed", slog.String("error", err.Error()))
		m.copyErr = err
		return m, nil
	}

	m.copied = true
	m.copyErr = nil
	return m, clearCopiedAfter(2 * time.Second)
}

func (m *AnalyzeModel) focusResults() {
	m.focus = focusResults
	m.input.Blur()
}

func (m *AnalyzeModel) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m AnalyzeModel) listLen() int {
	return len(m.session.Suggestions()) + len(m.session.Meanings())
}

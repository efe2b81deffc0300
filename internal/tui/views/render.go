package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/f3rmion/readage/internal/clipboard"
	"github.com/f3rmion/readage/internal/session"
	"github.com/f3rmion/readage/internal/tui/bigtext"
)

const (
	defaultWidth  = 80
	bigTextRows   = 3
	narrowLayout  = 72 // below this the metric cards stack
	welcomeText   = "Enter a word or phrase and press Enter to estimate its reading age."
	analyzingText = "Analyzing…"
)

// View renders the analysis view.
func (m AnalyzeModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.session.Phase() {
	case session.Idle:
		b.WriteString(welcomeStyle.Render(welcomeText))
	case session.Loading:
		b.WriteString(m.spinner.View() + " " + loadingStyle.Render(analyzingText))
	case session.ShowingError:
		b.WriteString(m.renderError())
	case session.ShowingSuggestions:
		b.WriteString(m.renderSuggestions())
	case session.ShowingMeaningChoice:
		b.WriteString(m.renderMeanings())
	case session.ShowingFinalResult:
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.activeKeys()))

	return b.String()
}

// activeKeys enables only the bindings that do something right now.
func (m AnalyzeModel) activeKeys() keyMap {
	k := m.keys
	inResults := m.focus == focusResults
	_, hasResult := m.session.Result()

	k.Submit.SetEnabled(!m.session.Busy())
	k.Pick.SetEnabled(inResults)
	k.Up.SetEnabled(inResults)
	k.Down.SetEnabled(inResults)
	k.Focus.SetEnabled(m.listLen() > 0)
	k.Copy.SetEnabled(hasResult && !inResults)
	return k
}

func (m AnalyzeModel) contentWidth() int {
	if m.width < 40 {
		return defaultWidth
	}
	return m.width
}

func (m AnalyzeModel) renderError() string {
	err := m.session.Err()
	if analysis.KindOf(err) == analysis.KindEmptyInput {
		return inlineErrorStyle.Render(analysis.UserMessage(err))
	}
	w := m.contentWidth() - 4
	return errorBannerStyle.Render(wordWrap(analysis.UserMessage(err), w))
}

func (m AnalyzeModel) renderSuggestions() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Did you mean?"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("We couldn't find %q. Try one of these:", m.session.Term())))
	b.WriteString("\n")

	var chips []string
	for i, s := range m.session.Suggestions() {
		style := chipStyle
		if m.focus == focusResults && i == m.cursor {
			style = chipActiveStyle
		}
		label := s
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, s)
		}
		chips = append(chips, style.Render(label))
	}
	b.WriteString(flowRow(chips, m.contentWidth()))

	return b.String()
}

func (m AnalyzeModel) renderMeanings() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("%q has more than one meaning", m.session.Term())))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Choose the meaning you want analyzed:"))
	b.WriteString("\n")

	w := m.contentWidth() - 2
	var rows []string
	for i, ta := range m.session.Meanings() {
		style := meaningStyle
		if m.focus == focusResults && i == m.cursor {
			style = meaningActiveStyle
		}
		body := meaningLabelStyle.Render(fmt.Sprintf("Meaning %d", i+1)) + "\n" +
			definitionStyle.Render(wordWrap(ta.Definition, w-4))
		rows = append(rows, style.Width(w).Render(body))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return b.String()
}

func (m AnalyzeModel) renderResult() string {
	r, ok := m.session.Result()
	if !ok {
		return ""
	}

	var b strings.Builder
	w := m.contentWidth()

	b.WriteString(headingStyle.Render("Analysis for " + m.session.Term()))
	if def := m.session.ChosenDefinition(); def != "" {
		b.WriteString("\n")
		b.WriteString(welcomeStyle.Render(wordWrap(def, w)))
	}
	b.WriteString("\n")

	age := clipboard.FormatReadingAge(r.ReadingAge)
	cards := []struct{ label, value, big string }{
		{"Reading Age", age, bigtext.Cached(age, bigTextRows)},
		{"School Year", r.SchoolYear, ""},
		{"Age Group", r.AgeGroup, ""},
		{"Pearson Syllabus", r.PearsonSyllabus, ""},
	}

	var row []string
	if w < narrowLayout {
		for _, c := range cards {
			row = append(row, renderCard(c.label, c.value, c.big, w-3))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, row...))
	} else {
		cardW := (w-len(cards))/len(cards) - 2
		for _, c := range cards {
			row = append(row, renderCard(c.label, c.value, c.big, cardW))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString("\n")
	b.WriteString(renderCard("Profession(s)", r.Profession, "", w-3))

	if m.copied {
		b.WriteString("\n")
		b.WriteString(copiedStyle.Render("Copied!"))
	} else if m.copyErr != nil {
		b.WriteString("\n")
		b.WriteString(inlineErrorStyle.Render("Copy failed: " + m.copyErr.Error()))
	}

	return b.String()
}

// renderCard draws one labelled metric. big, when set and narrow enough,
// replaces value. width excludes the border.
func renderCard(label, value, big string, width int) string {
	var body string
	if big != "" && lipgloss.Width(big) <= width-2 {
		body = bigValueStyle.Render(big)
	} else {
		body = cardValueStyle.Render(wordWrap(value, width-2))
	}
	return cardStyle.Width(width).Render(cardLabelStyle.Render(label) + "\n" + body)
}

// flowRow lays items out left to right, wrapping at width.
func flowRow(items []string, width int) string {
	var rows []string
	var current []string
	used := 0

	for _, it := range items {
		w := lipgloss.Width(it)
		if used+w > width && len(current) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			used = 0
		}
		current = append(current, it)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}

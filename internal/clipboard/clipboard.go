// Package clipboard copies analysis results to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/f3rmion/readage/internal/analysis"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard not available")

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// FormatResult renders an analysis as plain text for pasting. definition
// may be empty.
func FormatResult(term, definition string, r analysis.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", term)
	if definition != "" {
		fmt.Fprintf(&b, "Meaning: %s\n", definition)
	}
	fmt.Fprintf(&b, "Reading Age: %s\n", FormatReadingAge(r.ReadingAge))
	fmt.Fprintf(&b, "School Year: %s\n", r.SchoolYear)
	fmt.Fprintf(&b, "Age Group: %s\n", r.AgeGroup)
	fmt.Fprintf(&b, "Pearson Syllabus: %s\n", r.PearsonSyllabus)
	fmt.Fprintf(&b, "Profession(s): %s", r.Profession)
	return b.String()
}

// FormatReadingAge prints whole ages without a decimal point.
func FormatReadingAge(age float64) string {
	return fmt.Sprintf("%g", age)
}

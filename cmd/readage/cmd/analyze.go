package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/f3rmion/readage/internal/clipboard"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <word or phrase>",
	Short: "Analyze a word or phrase once and print the result",
	Long: `Analyze a word or phrase and print one of:
  - Spelling suggestions, if the term looks misspelled
  - The list of meanings, if the term has several
  - The reading age, school year, age group, profession(s) and
    Pearson syllabus of the term

Example:
  readage analyze photosynthesis
  readage analyze bank --meaning 2
  readage analyze "cash flow" --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print the parsed reply as JSON")
	analyzeCmd.Flags().IntP("meaning", "m", 0, "meaning number to analyze when the term has several")
	analyzeCmd.Flags().Bool("copy", false, "copy the result to the clipboard")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	meaning, _ := cmd.Flags().GetInt("meaning")
	doCopy, _ := cmd.Flags().GetBool("copy")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closer := setupLogger(cfg)
	defer closer.Close()

	analyzer, _, err := buildAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	term := strings.TrimSpace(strings.Join(args, " "))
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if asJSON {
		resp, err := analyzer.Analyze(ctx, term)
		if err != nil {
			return userFacing(err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	outcome, err := analyzer.Run(ctx, term)
	if err != nil {
		return userFacing(err)
	}

	switch outcome.Kind {
	case analysis.OutcomeSuggestions:
		printSuggestions(out, term, outcome.Suggestions())
		return nil

	case analysis.OutcomeMeaningChoice:
		meanings := outcome.Meanings()
		if meaning == 0 {
			printMeanings(out, term, meanings)
			return nil
		}
		if meaning < 1 || meaning > len(meanings) {
			return fmt.Errorf("meaning %d out of range: %q has %d meanings", meaning, term, len(meanings))
		}
		chosen := meanings[meaning-1]
		return printResult(out, term, chosen.Definition, chosen.Analysis, doCopy, logger)

	case analysis.OutcomeFinalResult:
		r, _ := outcome.Result()
		return printResult(out, term, "", r, doCopy, logger)
	}

	return fmt.Errorf("unexpected outcome %s", outcome.Kind)
}

// userFacing replaces analysis errors with the message meant for users.
// The full error is already in the log.
func userFacing(err error) error {
	if analysis.KindOf(err) == 0 {
		return err
	}
	return errors.New(analysis.UserMessage(err))
}

func printSuggestions(w io.Writer, term string, suggestions []string) {
	fmt.Fprintf(w, "Did you mean?  (%q was not recognized)\n", term)
	for i, s := range suggestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}

func printMeanings(w io.Writer, term string, meanings []analysis.TermAnalysis) {
	fmt.Fprintf(w, "%q has more than one meaning:\n", term)
	for i, m := range meanings {
		fmt.Fprintf(w, "  Meaning %d: %s\n", i+1, m.Definition)
	}
	fmt.Fprintf(w, "\nRerun with --meaning N to analyze one of them.\n")
}

func printResult(w io.Writer, term, definition string, r analysis.AnalysisResult, doCopy bool, logger *slog.Logger) error {
	text := clipboard.FormatResult(term, definition, r)
	fmt.Fprintln(w, text)

	if !doCopy {
		return nil
	}
	if err := clipboard.Write(text); err != nil {
		logger.Warn("copy failed", slog.String("error", err.Error()))
		return fmt.Errorf("copying result: %w", err)
	}
	fmt.Fprintln(w, "\nCopied to clipboard.")
	return nil
}

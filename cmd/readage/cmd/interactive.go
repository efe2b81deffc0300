package cmd

import "github.com/spf13/cobra"

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for estimating reading ages.

Controls:
  Enter    Analyze the word or phrase
  1-9      Choose a suggestion or meaning
  ↑/↓      Move between suggestions or meanings
  Tab      Switch focus between input and results
  Ctrl+Y   Copy the result
  Esc      Back / quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

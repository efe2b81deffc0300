package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Create the config directory and write a default config.yaml.

The API key is not stored in the file. Set READAGE_API_KEY, or
GEMINI_API_KEY / ANTHROPIC_API_KEY for the chosen provider.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir := getConfigDir()
	if err := config.EnsureConfigDir(dir); err != nil {
		return err
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	cfg, err := loadSettings()
	if err != nil && !force {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

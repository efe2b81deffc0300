// Package cmd contains all CLI commands for readage.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/readage/internal/analysis"
	"github.com/f3rmion/readage/internal/config"
	"github.com/f3rmion/readage/internal/llm"
	"github.com/f3rmion/readage/internal/logging"
	"github.com/f3rmion/readage/internal/prompt"
	"github.com/f3rmion/readage/internal/tui"
)

var cfgDir string

// newGenerator is replaced in tests.
var newGenerator = llm.New

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readage",
	Short: "Estimate the reading age of English words and phrases",
	Long: `readage asks a generative language model how hard a word or phrase is
to read and shows:
  - Reading age
  - School year and age group
  - Relevant profession(s)
  - The Pearson business syllabus it first appears on, if any

Misspelled words get spelling suggestions, and words with several common
meanings let you pick the one you want analyzed.

Running 'readage' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/readage)")
	rootCmd.PersistentFlags().String("provider", "", "analysis service: gemini or anthropic")
	rootCmd.PersistentFlags().String("model", "", "model name (default depends on provider)")
	rootCmd.PersistentFlags().String("locale", "", "school system for school year labels, e.g. UK")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding config directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("READAGE")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads the config file and applies flag and environment
// overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("provider"); v != "" {
		cfg.Provider = v
	}
	if v := viper.GetString("model"); v != "" {
		cfg.Model = v
	}
	if v := viper.GetString("locale"); v != "" {
		cfg.Locale = v
	}
	if v := viper.GetString("base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.Log.Level = v
	}
	cfg.APIKey = config.ResolveAPIKey(cfg, os.Getenv)

	return cfg, nil
}

// setupLogger opens the log file in the config directory. If the directory
// cannot be created, logs are discarded.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	dir := getConfigDir()
	if err := config.EnsureConfigDir(dir); err != nil {
		return logging.New(io.Discard, cfg.Log), io.NopCloser(nil)
	}
	return logging.NewLogger(cfg.Log, dir)
}

// buildAnalyzer wires the configured backend into an analyzer.
func buildAnalyzer(cfg *config.Config, logger *slog.Logger) (*analysis.Analyzer, analysis.Generator, error) {
	gen, err := newGenerator(llm.Options{
		Provider:    cfg.Provider,
		Model:       cfg.Model,
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	return analysis.NewAnalyzer(gen, prompt.NewGenerator(cfg.Locale), logger), gen, nil
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closer := setupLogger(cfg)
	defer closer.Close()

	analyzer, gen, err := buildAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting TUI", slog.String("provider", gen.Name()), slog.String("locale", cfg.Locale))
	return tui.Run(analyzer, gen.Name(), logger)
}

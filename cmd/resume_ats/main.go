// Package main provides the resume_ats command line tool: resume parsing,
// ATS keyword matching and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ats",
	Short: "Resume parser and ATS keyword matcher",
	Long: `resume_ats turns resumes (PDF, DOCX or plain text) into structured JSON and scores
them against job descriptions by keyword coverage.

Configuration can be loaded from a JSON file using --config. Environment variables
override the file, and command-line flags override both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// loadSettings builds the effective configuration for a command.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newLogger returns the command logger. Logs go to stderr so stdout stays
// usable for JSON output.
func newLogger(cfg *config.Config) *zap.Logger {
	return observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

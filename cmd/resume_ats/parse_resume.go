package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured JSON",
	Long: `Extract text from a PDF, DOCX or plain text resume, parse it into a structured
resume, validate it against the structured_resume schema and write the JSON result.`,
	RunE: runParseResume,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseTextDir    string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.pdf, .docx, .txt, .md)")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseTextDir, "keep-text", "", "Directory to write the cleaned text and its metadata to")

	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	cleanedText, metadata, err := ingestion.IngestFromFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	logger.Debug("extracted resume text",
		zap.String("file", parseInputFile),
		zap.String("format", string(metadata.Format)),
		zap.Int("lines", metadata.LineCount),
	)

	if parseTextDir != "" {
		name := strings.TrimSuffix(filepath.Base(parseInputFile), filepath.Ext(parseInputFile))
		if err := ingestion.WriteOutput(parseTextDir, name, cleanedText, metadata); err != nil {
			return fmt.Errorf("failed to write cleaned text: %w", err)
		}
	}

	parsed := parsing.New(cfg.ParserOptions()).ParseWithConfidence(cleanedText)
	if err := schemas.ValidateResume(parsed.Resume); err != nil {
		return fmt.Errorf("parsed resume failed schema validation: %w", err)
	}

	if err := writeJSON(parseOutputFile, parsed); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(summaryWriter(parseOutputFile)).PrintResume(parsed.Resume, parsed.Confidence)
	}
	if parseOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Parsed resume written to %s (confidence %d%%)\n", parseOutputFile, parsed.Confidence)
	}

	return nil
}

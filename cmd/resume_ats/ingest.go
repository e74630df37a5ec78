package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract and clean text from a document or job posting URL",
	Long:  "Extract text from a PDF, DOCX or text file, or fetch a job posting URL, clean the content, and output cleaned text with metadata.",
	RunE:  runIngest,
}

var (
	ingestFile   string
	ingestURL    string
	ingestOutDir string
	ingestName   string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to document (.pdf, .docx, .txt, .md)")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().StringVar(&ingestName, "name", "document", "Base name of the output files")

	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if ingestFile != "" && ingestURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	var cleanedText string
	var metadata *ingestion.Metadata

	if ingestFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL, cfg.FetchOptions(), logger)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, ingestName, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ingested %s (%d lines)\n", metadata.Source, metadata.LineCount)
	_, _ = fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", filepath.Join(ingestOutDir, ingestName+".cleaned.txt"))
	_, _ = fmt.Fprintf(os.Stdout, "Metadata: %s\n", filepath.Join(ingestOutDir, ingestName+".meta.json"))

	return nil
}

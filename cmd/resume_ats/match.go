package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against one or more job descriptions",
	Long: `Score a resume against job descriptions by keyword coverage.

The resume may be a structured resume JSON file (as written by parse-resume) or a
PDF, DOCX or plain text document. Job descriptions come from files (--jd, repeatable)
or a job posting URL (--jd-url). One job description yields a match report; several
yield a batch response with one report each, in the order given.`,
	RunE: runMatch,
}

var (
	matchResumeFile string
	matchJDFiles    []string
	matchJDURL      string
	matchOutputFile string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume (.json structured resume, .pdf, .docx, .txt, .md)")
	matchCmd.Flags().StringArrayVar(&matchJDFiles, "jd", nil, "Path to a job description file (repeatable)")
	matchCmd.Flags().StringVar(&matchJDURL, "jd-url", "", "URL of a job posting to fetch")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

// jobDescription is one job description with a display name for summaries.
type jobDescription struct {
	name string
	text string
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if len(matchJDFiles) == 0 && matchJDURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided")
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	jds, err := loadJobDescriptions(ctx, cfg, logger)
	if err != nil {
		return err
	}

	matcher := ats.NewMatcher(cfg.MatcherOptions())
	reports, err := matchResume(ctx, cfg, matcher, jds)
	if err != nil {
		return err
	}

	for i := range reports {
		if err := schemas.ValidateMatchReport(reports[i]); err != nil {
			return fmt.Errorf("match report for %s failed schema validation: %w", jds[i].name, err)
		}
	}

	var result any = types.BatchMatchResponse{Reports: reports}
	if len(reports) == 1 {
		result = reports[0]
	}
	if err := writeJSON(matchOutputFile, result); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(summaryWriter(matchOutputFile))
		if len(reports) == 1 {
			printer.PrintMatchReport(&reports[0])
		} else {
			names := make([]string, len(jds))
			for i, jd := range jds {
				names[i] = jd.name
			}
			printer.PrintBatchSummary(names, reports)
		}
	}
	if matchOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Match results written to %s\n", matchOutputFile)
	}

	return nil
}

// loadJobDescriptions reads the --jd files in order, then the --jd-url posting.
func loadJobDescriptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]jobDescription, error) {
	jds := make([]jobDescription, 0, len(matchJDFiles)+1)
	for _, path := range matchJDFiles {
		text, _, err := ingestion.IngestFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description: %w", err)
		}
		jds = append(jds, jobDescription{name: filepath.Base(path), text: text})
	}

	if matchJDURL != "" {
		text, metadata, err := ingestion.IngestFromURL(ctx, matchJDURL, cfg.FetchOptions(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		name := metadata.Title
		if name == "" {
			name = matchJDURL
		}
		jds = append(jds, jobDescription{name: name, text: text})
	}

	return jds, nil
}

// matchResume scores the resume against every job description. A structured
// resume JSON is matched field by field; any other document is extracted,
// cleaned and matched as text.
func matchResume(ctx context.Context, cfg *config.Config, matcher *ats.Matcher, jds []jobDescription) ([]types.MatchReport, error) {
	texts := make([]string, len(jds))
	for i, jd := range jds {
		texts[i] = jd.text
	}

	if strings.EqualFold(filepath.Ext(matchResumeFile), ".json") {
		resume, err := loadStructuredResume(matchResumeFile)
		if err != nil {
			return nil, err
		}
		reports := make([]types.MatchReport, len(texts))
		for i, text := range texts {
			reports[i] = matcher.CalculateMatch(resume, text)
		}
		return reports, nil
	}

	resumeText, _, err := ingestion.IngestFromFile(matchResumeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	if cfg.Verbose {
		parsed := parsing.New(cfg.ParserOptions()).ParseWithConfidence(resumeText)
		observability.NewPrinter(os.Stderr).PrintResume(parsed.Resume, parsed.Confidence)
	}

	reports, err := matcher.MatchAll(ctx, resumeText, texts)
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}
	return reports, nil
}

// loadStructuredResume reads a structured resume JSON file, accepting both a
// bare resume and the {resume, confidence} output of parse-resume.
func loadStructuredResume(path string) (*types.StructuredResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	var wrapped struct {
		Resume *types.StructuredResume `json:"resume"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Resume != nil {
		return wrapped.Resume, nil
	}

	if err := schemas.ValidateResume(json.RawMessage(data)); err != nil {
		return nil, fmt.Errorf("resume file is not a valid structured resume: %w", err)
	}
	var resume types.StructuredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

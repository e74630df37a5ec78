package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/fetch"
)

// IngestFromURL fetches a job posting, extracts its description with the
// selectors of the detected platform, cleans it, and returns it with metadata.
// A nil logger disables logging.
func IngestFromURL(ctx context.Context, urlStr string, opts *fetch.Options, logger *zap.Logger) (string, *Metadata, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	posting, err := fetch.JobPosting(ctx, urlStr, opts)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(posting.Platform)),
		zap.Int("chars", len(posting.Text)),
		zap.Bool("truncated", posting.Truncated),
	)

	cleanedText := CleanText(posting.Text)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, urlStr)
	}

	metadata := NewMetadata(cleanedText, urlStr, FormatHTML)
	metadata.Platform = string(posting.Platform)
	metadata.Title = posting.Title
	metadata.Truncated = posting.Truncated

	logger.Debug("cleaned job posting",
		zap.String("title", posting.Title),
		zap.Int("lines", metadata.LineCount),
	)

	return cleanedText, metadata, nil
}

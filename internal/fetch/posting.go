package fetch

import (
	"context"
	"fmt"
)

// Posting is a job posting reduced to plain text.
type Posting struct {
	URL       string
	Platform  Platform
	Title     string
	Text      string
	Truncated bool
}

// JobPosting fetches a job posting page and extracts its description text
// using the selectors of the detected platform.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*Posting, error) {
	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	if text == "" {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("no text found in %d bytes of HTML", len(result.HTML))}
	}

	return &Posting{
		URL:       urlStr,
		Platform:  platform,
		Title:     ExtractTitle(result.HTML),
		Text:      text,
		Truncated: result.Truncated,
	}, nil
}

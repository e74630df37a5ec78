package ats

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-ats/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many job descriptions MatchAll scores at once.
const DefaultConcurrency = 4

// MatchAll scores one resume text against several job descriptions in
// parallel with the default options. Reports are returned in input order.
func MatchAll(ctx context.Context, resumeText string, jobDescriptions []string) ([]types.MatchReport, error) {
	return defaultMatcher.MatchAll(ctx, resumeText, jobDescriptions)
}

// MatchAll scores one resume text against several job descriptions in
// parallel. The resume is indexed once and shared read-only by the workers.
// It returns the context error if ctx is cancelled before all reports are done.
func (m *Matcher) MatchAll(ctx context.Context, resumeText string, jobDescriptions []string) ([]types.MatchReport, error) {
	idx := newResumeIndex(resumeText)
	reports := make([]types.MatchReport, len(jobDescriptions))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Concurrency)

	for i, jd := range jobDescriptions {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("job description %d: %w", i, err)
			}
			// Each goroutine writes only its own slot.
			reports[i] = m.match(idx, jd)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

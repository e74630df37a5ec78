package ats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAll_PreservesInputOrder(t *testing.T) {
	resumeText := "Go developer. Built Docker images and Kubernetes operators."
	jds := []string{
		"Go and Docker",
		"Python, Django, Celery",
		"Kubernetes",
		"",
		"Rust, Go",
	}

	reports, err := NewMatcher(Options{Concurrency: 2}).MatchAll(context.Background(), resumeText, jds)
	require.NoError(t, err)
	require.Len(t, reports, len(jds))

	for i, jd := range jds {
		assert.Equal(t, CalculateMatchFromText(resumeText, jd), reports[i], "report %d", i)
	}
	assert.Equal(t, 100, reports[0].Score)
	assert.Equal(t, 0, reports[1].Score)
	assert.Equal(t, 50, reports[4].Score)
}

func TestMatchAll_Empty(t *testing.T) {
	reports, err := MatchAll(context.Background(), "Go", nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestMatchAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := MatchAll(ctx, "Go", []string{"Go", "Rust"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, reports)
}

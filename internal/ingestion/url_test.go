package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/fetch"
)

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), tt.urlStr, nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHTTPRequestFailed)
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		html := `<!DOCTYPE html>
<html>
<head><title>Careers</title></head>
<body>
<nav>Nav</nav>
<main>
<h1>Backend Engineer</h1>
<p>We are hiring a backend engineer.</p>
<ul><li>Go</li><li>PostgreSQL</li></ul>
</main>
<footer>Footer</footer>
</body>
</html>`
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	cleanedText, metadata, err := IngestFromURL(context.Background(), server.URL, nil, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nWe are hiring a backend engineer.\n- Go\n- PostgreSQL", cleanedText)
	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.Source)
	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Equal(t, string(fetch.PlatformUnknown), metadata.Platform)
	assert.Equal(t, "Backend Engineer", metadata.Title)
	assert.Equal(t, 4, metadata.LineCount)
	assert.NotContains(t, cleanedText, "Nav")
	assert.NotContains(t, cleanedText, "Footer")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
	assert.Equal(t, http.StatusNotFound, fetch.StatusCode(err))
}

func TestIngestFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>only navigation</nav></body></html>`))
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, nil, nil)
	assert.Error(t, err)
}

func TestIngestFromURL_NetworkError(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "http://localhost:99999/nonexistent", nil, nil)
	assert.Error(t, err)
}

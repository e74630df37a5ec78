package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Middleware(t *testing.T) {
	m := NewMetrics()
	handler := m.Middleware(
		func(*http.Request) string { return "/match" },
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/match?x=1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	body := scrape(t, m)
	assert.Contains(t, body, `resume_ats_http_requests_total{method="POST",path="/match",status="418"} 1`)
	assert.Contains(t, body, `resume_ats_http_request_duration_seconds_count{method="POST",path="/match"} 1`)
	assert.Contains(t, body, "resume_ats_http_in_flight_requests 0")
}

func TestMetrics_DefaultStatusIsOK(t *testing.T) {
	m := NewMetrics()
	handler := m.Middleware(
		func(r *http.Request) string { return r.URL.Path },
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, scrape(t, m), `resume_ats_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestMetrics_Recorders(t *testing.T) {
	m := NewMetrics()
	m.RecordParse("text", 75)
	m.RecordMatch("match", 33)
	m.RecordMatch("match", 100)
	m.RecordJobFetch("greenhouse", nil)
	m.RecordJobFetch("", errors.New("boom"))

	body := scrape(t, m)
	assert.Contains(t, body, `resume_ats_parser_confidence_count{source="text"} 1`)
	assert.Contains(t, body, `resume_ats_parser_confidence_sum{source="text"} 75`)
	assert.Contains(t, body, `resume_ats_ats_match_score_count{endpoint="match"} 2`)
	assert.Contains(t, body, `resume_ats_fetch_job_postings_total{platform="greenhouse",status="ok"} 1`)
	assert.Contains(t, body, `resume_ats_fetch_job_postings_total{platform="unknown",status="error"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	a.RecordParse("text", 50)

	assert.Contains(t, scrape(t, a), "resume_ats_parser_confidence_count")
	assert.NotContains(t, scrape(t, b), `resume_ats_parser_confidence_count{source="text"}`)
}

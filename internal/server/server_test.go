package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-ats/internal/config"
)

// newTestServer creates a server with default settings and no logging
func newTestServer() *Server {
	return New(Config{}, zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/match", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORS_AnyOrigin(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORS_AllowedOrigins(t *testing.T) {
	s := New(Config{AllowedOrigins: []string{"https://app.example.com"}}, zap.NewNop())

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"listed origin", "https://app.example.com", "https://app.example.com"},
		{"other origin", "https://evil.example.com", ""},
		{"no origin", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			s.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID_Generated(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
}

func TestRequestID_Context(t *testing.T) {
	s := newTestServer()

	var seen string
	handler := s.withRequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", seen)
	assert.Empty(t, RequestID(context.Background()))
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(Config{}, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	s.Handler().ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Contains(t, fields, "duration")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `resume_ats_http_requests_total{method="GET",path="GET /health",status="200"} 1`)
	assert.Contains(t, string(body), `resume_ats_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}

func TestNewConfig(t *testing.T) {
	settings := config.Defaults()
	settings.Port = 9191
	settings.AllowedOrigins = []string{"https://app.example.com"}
	settings.MaxSuggestions = 2
	settings.FetchTimeoutSeconds = 3

	cfg := NewConfig(&settings)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2, cfg.Matcher.MaxSuggestions)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{Port: 9090}, nil)

	assert.Equal(t, ":9090", s.httpServer.Addr)
	assert.Equal(t, DefaultMaxBodyBytes, s.cfg.MaxBodyBytes)
	assert.Equal(t, DefaultMaxUploadBytes, s.cfg.MaxUploadBytes)
	assert.Equal(t, 15*time.Second, s.cfg.ShutdownTimeout)
	assert.NotNil(t, s.cfg.Fetch)
}

func TestRun_ShutsDownWhenContextDone(t *testing.T) {
	s := New(Config{Port: 0, ShutdownTimeout: time.Second}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
}

func TestRun_ListenError(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	s := New(Config{Port: port}, zap.NewNop())

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf(":%d", port))
}

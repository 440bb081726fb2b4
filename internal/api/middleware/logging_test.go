package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestLogging_PropagatesRequestID(t *testing.T) {
	// Arrange
	buf := captureDefaultLogger(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.LoggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/product/show/9", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()

	// Act
	middleware.Logging(next).ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, "req-123", rr.Header().Get(middleware.RequestIDHeader))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner, completed map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	require.NoError(t, json.Unmarshal(lines[1], &completed))

	assert.Equal(t, "req-123", inner["correlation_id"])
	assert.Equal(t, "Request completed", completed["msg"])
	assert.Equal(t, "WARN", completed["level"])
	assert.Equal(t, float64(http.StatusNotFound), completed["http_status"])
}

func TestLogging_GeneratesRequestID(t *testing.T) {
	// Arrange
	captureDefaultLogger(t)
	rr := httptest.NewRecorder()

	// Act
	middleware.Logging(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	assert.Len(t, rr.Header().Get(middleware.RequestIDHeader), 36)
}

func TestLoggerFromContext_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, slog.Default(), middleware.LoggerFromContext(req.Context()))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/bookmarks", nil)
	req.Header.Set("User-Agent", "curl/8.0")
	req.Header.Set("Referer", "https://example.com/")
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/bookmarks", fields["uri"])
	assert.Equal(t, "HTTP/1.1", fields["proto"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.EqualValues(t, 5, fields["size"])
	assert.Equal(t, "curl/8.0", fields["user_agent"])
	assert.Equal(t, "https://example.com/", fields["referer"])
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "hello", w.Body.String())
}

func TestLogger_DefaultStatus(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
	assert.EqualValues(t, 0, entries[0].ContextMap()["size"])
}

func TestLogger_RequestID(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	handler := middleware.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodDelete, "/bookmarks/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.EqualValues(t, http.StatusNoContent, entries[0].ContextMap()["status"])
}

package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHealthService struct{}

func (fakeHealthService) HealthCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"status": "healthy", "version": "test"}
}

func (fakeHealthService) LivenessCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"status": "alive"}
}

func (fakeHealthService) ReadinessCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"status": "ready"}
}

func (fakeHealthService) Version() map[string]interface{} {
	return map[string]interface{}{"version": "test"}
}

func newHealthRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHealthHandler(fakeHealthService{}, logger)

	r := chi.NewRouter()
	r.Mount("/api/health", handler.Routes())
	r.Get("/api/version", handler.Version)
	return r
}

func TestHealthHandler(t *testing.T) {
	router := newHealthRouter()

	tests := []struct {
		path       string
		wantStatus string
	}{
		{"/api/health", "healthy"},
		{"/api/health/live", "alive"},
		{"/api/health/ready", "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body["status"])
		})
	}
}

func TestHealthHandler_Version(t *testing.T) {
	router := newHealthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test", body["version"])
}

package errors

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler() *ErrorHandler {
	return NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}

func TestErrorToProblem(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/analyze", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"unsupported format", errors.New("unsupported file format: .pdf"), http.StatusBadRequest, TypeUnsupportedFormat},
		{"parse failure", errors.New("failed to parse report.csv: bad row"), http.StatusUnprocessableEntity, TypeUnprocessableFile},
		{"empty file", errors.New("file contains no data"), http.StatusUnprocessableEntity, TypeUnprocessableFile},
		{"body too large", errors.New("http: request body too large"), http.StatusRequestEntityTooLarge, TypePayloadTooLarge},
		{"not found", errors.New("resource not found"), http.StatusNotFound, TypeNotFound},
		{"rate limit", errors.New("rate limit exceeded"), http.StatusTooManyRequests, TypeRateLimit},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, TypeTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := h.ErrorToProblem(tt.err, req)

			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
			assert.Equal(t, "/api/reports/analyze", problem.Instance)
		})
	}
}

func TestErrorToProblem_APIError(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/analyze", nil)

	tests := []struct {
		name     string
		apiErr   *APIError
		wantType string
	}{
		{"missing upload", ErrMissingUpload, TypeMissingUpload},
		{"unsupported", ErrUnsupportedFile, TypeUnsupportedFormat},
		{"too large", ErrUploadTooLarge, TypePayloadTooLarge},
		{"unprocessable", ErrUnprocessableFile, TypeUnprocessableFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := h.ErrorToProblem(tt.apiErr, req)

			assert.Equal(t, tt.apiErr.StatusCode, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
			assert.Equal(t, tt.apiErr.ErrorCode, problem.Extensions["error_code"])
		})
	}
}

func TestHandleError_WritesProblemJSON(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/analyze", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, errors.New("unsupported file format: .gif"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, TypeUnsupportedFormat, body["type"])
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
	assert.Contains(t, body, "trace_id")
}

func TestHandleError_NilErrorWritesNothing(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, nil)

	assert.Equal(t, 0, rec.Body.Len())
}

func TestNotFound(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/reports/analyze", nil)
	rec := httptest.NewRecorder()
	h.MethodNotAllowed(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestProblemDetails_MarshalIncludesExtensions(t *testing.T) {
	problem := NewProblemDetails(http.StatusBadRequest, TypeValidation, "Bad Request", "detail", "/x").
		WithExtension("error_code", "VALIDATION_FAILED")

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "VALIDATION_FAILED", body["error_code"])
	assert.Equal(t, TypeValidation, body["type"])
}

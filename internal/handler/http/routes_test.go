package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/signbridge/signbridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRoute(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp indexResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Accessible Communication App API is running", resp.Message)
	assert.Equal(t, "/health", resp.Endpoints["health"])
	assert.Equal(t, "/api", resp.Endpoints["api"])
}

func TestAPIIndexRoute(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp apiIndexResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "API Base Endpoint", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Contains(t, resp.AvailableResources, "/translate")
	assert.Contains(t, resp.AvailableResources, "/predict")
}

func TestHealthRoute(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Message)
}

// An unsupported method on an existing path must be indistinguishable from
// an unknown path.
func TestMethodNotAllowedLooksLikeUnknownRoute(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Route not found", resp.Message)
}

func TestTraceIDHeaderEchoed(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5174")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5174", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

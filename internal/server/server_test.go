package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonerow/forte/internal/config"
	"github.com/tonerow/forte/internal/forte"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{Port: 0, LogLevel: "error", Mode: gin.TestMode}
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	return New(cfg, forte.NewCatalog(), logger)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestClassifyEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/classify", gin.H{"pitches": "C E G"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "3-11B", resp["label"])
	assert.Equal(t, float64(3), resp["cardinality"])
	assert.Equal(t, float64(11), resp["index"])
	assert.Equal(t, "B", resp["orientation"])
	assert.Equal(t, []any{float64(0), float64(4), float64(7)}, resp["normal_order"])
	assert.Equal(t, []any{float64(0), float64(3), float64(7)}, resp["prime_form"])
}

func TestClassifyEndpointAcceptsIntegers(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/classify", gin.H{"pitches": "0 1 6"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3-5A", decode(t, w)["label"])
}

func TestClassifyEndpointRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(t, s, "/api/classify", gin.H{"pitches": "C H G"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, s, "/api/classify", gin.H{"pitches": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, s, "/api/classify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalOrderEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/normal-order", gin.H{"pitches": "C G D F# C#"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(0), float64(1), float64(2), float64(6), float64(7)},
		decode(t, w)["normal_order"])

	w = postJSON(t, s, "/api/normal-order", gin.H{"pitches": "C D E F G A B", "transposed": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(0), float64(1), float64(3), float64(5), float64(6), float64(8), float64(10)},
		decode(t, w)["normal_order"])
}

func TestPrimeFormEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/prime-form", gin.H{"pitches": "C E G"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(0), float64(3), float64(7)}, decode(t, w)["prime_form"])
}

func TestInvertEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/invert", gin.H{"pitches": "C E G", "transposed": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(0), float64(3), float64(7)}, decode(t, w)["inversion"])
}

func TestComplementEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/complement", gin.H{"pitches": "C D E F G A B"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(6), float64(8), float64(10), float64(1), float64(3)},
		decode(t, w)["complement"])
}

func TestIntervalEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/interval", gin.H{"a": "C E G", "b": "D F# A"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["interval"])

	w = postJSON(t, s, "/api/interval", gin.H{"a": "C E G"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntervalEndpointRejectsBadTokens(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/interval", gin.H{"a": "C H G", "b": "D F# A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, s, "/api/interval", gin.H{"a": "C E G", "b": "D X A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubsetsEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := postJSON(t, s, "/api/subsets", gin.H{"pitches": "Eb G Ab D"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"3-4", "3-5"}, decode(t, w)["classes"])
}

func TestCatalogEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/3", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(3), resp["cardinality"])
	assert.Len(t, resp["classes"], 12)

	req = httptest.NewRequest(http.MethodGet, "/api/catalog/13", nil)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := config.Config{Port: 0, LogLevel: "error", Mode: gin.TestMode}
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	s := New(cfg, forte.NewCatalog(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Give the listener a moment to come up, then ask it to drain.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	postJSON(t, s, "/api/classify", gin.H{"pitches": "C E G"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "forte_requests_total")
	assert.Contains(t, w.Body.String(), "forte_classifications_total")
}

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/purekata/internal/config"
	"github.com/Pure-Company/purekata/internal/exercise"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, maxBody int64) http.Handler {
	t.Helper()
	cfg := config.Default().Serve
	cfg.Timeout = time.Second
	if maxBody > 0 {
		cfg.MaxBodyBytes = maxBody
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(exercise.NewRunner(exercise.Default()), cfg, logger).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(t, 0), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListExercises(t *testing.T) {
	rec := do(t, newTestServer(t, 0), http.MethodGet, "/exercises?topic=introduction", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []ExerciseInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "hello", got[0].Name)
	for _, ex := range got {
		assert.Equal(t, "introduction", ex.Topic)
	}
}

func TestRunExercise(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantBody string
	}{
		{"ok", "/exercises/rot13", `["Uryyb"]`, http.StatusOK, "[\"Hello\"]\n"},
		{"multi line", "/exercises/combination", "5\n2\n", http.StatusOK, "10\n"},
		{"unknown", "/exercises/nope", "", http.StatusNotFound, ""},
		{"invalid input", "/exercises/sum-terms", "three", http.StatusBadRequest, ""},
	}

	h := newTestServer(t, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRunExercise_BodyTooLarge(t *testing.T) {
	rec := do(t, newTestServer(t, 4), http.MethodPost, "/exercises/strike", "too long")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(t, newTestServer(t, 4), http.MethodPost, "/exercises/strike", "ok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<strike>ok</strike>\n", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	rec := do(t, newTestServer(t, 0), http.MethodOptions, "/exercises/rot13", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

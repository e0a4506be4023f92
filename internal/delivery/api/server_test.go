package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"supplyhub/config"
	"supplyhub/internal/delivery/api/response"
	deliverycontext "supplyhub/internal/delivery/context"
	"supplyhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

func TestNewEcho_Chain(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.New(nil))
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	t.Run("unknown route gets the error envelope and a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "req-42", body.Meta.RequestID)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("oversized bodies are rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 4096)))
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

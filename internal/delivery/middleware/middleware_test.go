package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"supplyhub/config"
	deliverycontext "supplyhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"client id is kept", "req-abc-123", true},
		{"oversized id is replaced", strings.Repeat("x", maxRequestIDLength+1), false},
		{"control characters are replaced", "bad\nid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			var ctxID string
			var hasLogger bool
			e.GET("/", m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.True(t, hasLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
	}{
		{"debug logs success", true, http.StatusOK, true},
		{"quiet mode skips success", false, http.StatusOK, false},
		{"quiet mode skips client errors", false, http.StatusBadRequest, false},
		{"quiet mode logs server errors", false, http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			m := NewLoggerMiddleware(logger, cfg)
			e.GET("/orders/:id", m.Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			}))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `"route":"/orders/:id"`)
			assert.Contains(t, buf.String(), `"uri":"/orders/42"`)
		})
	}
}

func TestLoggerMiddleware_LogsUncommittedErrors(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e.GET("/", m.Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	}))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

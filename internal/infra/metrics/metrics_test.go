package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"supplyhub/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "test"}})

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/orders/:id", "200")))
	assert.Zero(t, testutil.ToFloat64(m.requestInFlight))
}

func TestMiddleware_RecordsHTTPErrorStatus(t *testing.T) {
	m := New(nil)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/fail", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/fail", "418")))
}

func TestHandler_ExposesDomainCounters(t *testing.T) {
	m := New(nil)
	m.CacheHit("product", 2)
	m.CacheMiss("product", 1)
	m.OrderPlaced()
	m.EventPublishFailed()

	var err error = errors.New("boom")
	m.ObserveView("grouped", time.Now(), &err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `supplyhub_cache_hits_total{entity="product"} 2`))
	assert.True(t, strings.Contains(body, "supplyhub_orders_placed_total 1"))
	assert.True(t, strings.Contains(body, "supplyhub_orders_event_publish_failures_total 1"))
	assert.True(t, strings.Contains(body, `outcome="error"`))
}

func TestRegisterDBStats_Idempotent(t *testing.T) {
	m := New(nil)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m.RegisterDBStats(sqlDB, "supplyhub")
	assert.NotPanics(t, func() { m.RegisterDBStats(sqlDB, "supplyhub") })

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "go_sql_max_open_connections" {
			found = true
		}
	}
	assert.True(t, found)
}

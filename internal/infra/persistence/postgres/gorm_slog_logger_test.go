package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "supplyhub/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{"quiet fast query", false, time.Millisecond, nil, ""},
		{"debug fast query", true, time.Millisecond, nil, "GORM query"},
		{"slow query", false, time.Second, nil, "GORM slow query"},
		{"failed query", false, time.Millisecond, errors.New("deadlock detected"), "GORM query failed"},
		{"record not found is silent", false, time.Millisecond, gorm.ErrRecordNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), tt.debug, 200*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn("SELECT 1", 1), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := NewGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), true, 0)
	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-7"))

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)
	l.Trace(ctx, time.Now(), sqlFn("SELECT * FROM orders", 3), nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
}

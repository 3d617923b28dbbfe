package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contextKey string

const queryStartKey contextKey = "bizhub_query_start"

// RegisterDBTracing installs the otelgorm plugin when tracing is on and logs
// statements slower than slowThreshold either way.
func RegisterDBTracing(db *gorm.DB, tracing bool, slowThreshold time.Duration, logger *zap.Logger) error {
	if tracing {
		if err := db.Use(otelgorm.NewPlugin(
			otelgorm.WithDBName("postgresql"),
			otelgorm.WithoutQueryVariables(),
		)); err != nil {
			return err
		}
	}
	if slowThreshold <= 0 {
		return nil
	}

	sq := &slowQueryLogger{threshold: slowThreshold, logger: logger}
	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("bizhub:start_create", sq.start); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("bizhub:slow_create", sq.check); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("bizhub:start_query", sq.start); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("bizhub:slow_query", sq.check); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("bizhub:start_update", sq.start); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("bizhub:slow_update", sq.check); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("bizhub:start_delete", sq.start); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("bizhub:slow_delete", sq.check); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("bizhub:start_raw", sq.start); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("bizhub:slow_raw", sq.check)
}

type slowQueryLogger struct {
	threshold time.Duration
	logger    *zap.Logger
}

func (s *slowQueryLogger) start(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey, time.Now())
	}
}

func (s *slowQueryLogger) check(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	started, ok := ctx.Value(queryStartKey).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(started)
	if elapsed < s.threshold {
		return
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}
	fields := []zap.Field{
		zap.String("table", db.Statement.Table),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", db.Statement.RowsAffected),
	}
	if traceID := TraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		fields = append(fields, zap.Error(db.Error))
	}
	s.logger.Warn("slow query", fields...)
}

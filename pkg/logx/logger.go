package logx

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// withTrace appends trace_id/span_id fields when the context carries an
// active span, so log lines can be correlated with traces.
func withTrace(ctx context.Context, fields []zap.Field) []zap.Field {
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return fields
	}

	return append(fields,
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}

func log(ctx context.Context, logger *zap.Logger, level zapcore.Level, msg string, fields []zap.Field) {
	logger.WithOptions(zap.AddCallerSkip(2)).Log(level, msg, withTrace(ctx, fields)...)
}

func Debug(ctx context.Context, logger *zap.Logger, msg string, fields ...zap.Field) {
	log(ctx, logger, zapcore.DebugLevel, msg, fields)
}

func Info(ctx context.Context, logger *zap.Logger, msg string, fields ...zap.Field) {
	log(ctx, logger, zapcore.InfoLevel, msg, fields)
}

func Warn(ctx context.Context, logger *zap.Logger, msg string, fields ...zap.Field) {
	log(ctx, logger, zapcore.WarnLevel, msg, fields)
}

func Error(ctx context.Context, logger *zap.Logger, msg string, fields ...zap.Field) {
	log(ctx, logger, zapcore.ErrorLevel, msg, fields)
}

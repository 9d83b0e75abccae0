package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "regime-dashboard"

var (
	globalLogger   = slog.New(slog.NewTextHandler(os.Stdout, nil))
	tracingEnabled bool
	tracer         trace.Tracer
	tracerProvider *sdktrace.TracerProvider
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `yaml:"level"`   // DEBUG, INFO, WARN, ERROR
	Format  string `yaml:"format"`  // json or text
	Tracing bool   `yaml:"tracing"` // stdout OpenTelemetry exporter
}

// Init initializes the global logger and tracer writing to stdout.
func Init(cfg LogConfig) error {
	return InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter is Init with an explicit log destination.
func InitWithWriter(cfg LogConfig, w io.Writer) error {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	tracingEnabled = cfg.Tracing
	if tracingEnabled {
		if err := initTracer(); err != nil {
			globalLogger.Warn("Failed to initialize OpenTelemetry tracer, tracing disabled", "error", err)
			tracingEnabled = false
		}
	}
	return nil
}

func initTracer() error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return err
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("1.0.0"),
		),
	)
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	tracer = otel.Tracer(serviceName)
	return nil
}

// Shutdown flushes pending spans.
func Shutdown(ctx context.Context) error {
	if tracerProvider != nil {
		return tracerProvider.Shutdown(ctx)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StartSpan starts a new OpenTelemetry span, or returns the current one when
// tracing is off.
func StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if !tracingEnabled || tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, spanName, opts...)
}

func traceAttrs(ctx context.Context) []any {
	if !tracingEnabled {
		return nil
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return nil
	}
	return []any{"trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String()}
}

func logWithTrace(ctx context.Context, level slog.Level, msg string, args ...any) {
	if attrs := traceAttrs(ctx); attrs != nil {
		args = append(attrs, args...)
	}
	globalLogger.Log(ctx, level, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelError, msg, args...)
}

// ErrorWithErr logs err and marks the active span as failed.
func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	if tracingEnabled {
		span := trace.SpanFromContext(ctx)
		if span.SpanContext().IsValid() {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	logWithTrace(ctx, slog.LevelError, msg, append([]any{"error", err}, args...)...)
}

// OperationTimer measures one operation and owns its span.
type OperationTimer struct {
	ctx       context.Context
	span      trace.Span
	operation string
	start     time.Time
	fields    []any
}

// StartOperation opens a span named operation. fields are key/value pairs
// recorded both as span attributes and on the completion log line.
func StartOperation(ctx context.Context, operation string, fields ...any) *OperationTimer {
	var span trace.Span
	if tracingEnabled {
		ctx, span = StartSpan(ctx, operation)
		span.SetAttributes(toAttributes(fields)...)
	}
	return &OperationTimer{
		ctx:       ctx,
		span:      span,
		operation: operation,
		start:     time.Now(),
		fields:    fields,
	}
}

// Context returns the context carrying the operation's span.
func (ot *OperationTimer) Context() context.Context {
	return ot.ctx
}

// End completes the operation.
func (ot *OperationTimer) End(additionalFields ...any) {
	duration := time.Since(ot.start)
	if ot.span != nil {
		ot.span.SetAttributes(attribute.Int64("duration_ms", duration.Milliseconds()))
		ot.span.SetAttributes(toAttributes(additionalFields)...)
		ot.span.SetStatus(codes.Ok, "completed")
		ot.span.End()
	}
	fields := append([]any{"operation", ot.operation, "duration_ms", duration.Milliseconds()}, ot.fields...)
	Debug(ot.ctx, "Operation completed", append(fields, additionalFields...)...)
}

// EndWithError completes the operation with a failure.
func (ot *OperationTimer) EndWithError(err error, additionalFields ...any) {
	duration := time.Since(ot.start)
	if ot.span != nil {
		ot.span.SetAttributes(attribute.Int64("duration_ms", duration.Milliseconds()))
		ot.span.RecordError(err)
		ot.span.SetStatus(codes.Error, err.Error())
		ot.span.End()
	}
	fields := append([]any{"operation", ot.operation, "duration_ms", duration.Milliseconds(), "error", err}, ot.fields...)
	Warn(ot.ctx, "Operation failed", append(fields, additionalFields...)...)
}

func toAttributes(fields []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		}
	}
	return attrs
}

// IsTracingEnabled returns whether tracing is enabled
func IsTracingEnabled() bool {
	return tracingEnabled
}

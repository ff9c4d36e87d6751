//go:build !notrace

package xmlscan

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// TracingEnabled reports whether this build carries tracing
// instrumentation. It is false in binaries built with -tags notrace.
var TracingEnabled = true

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	// Otherwise, create a new context with the trace logger
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	// If the context has a trace logger, use that
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	// Otherwise, return a null logger
	return nullLogger
}

// Span is the upgrade path for future OpenTelemetry compatibility.
type Span interface {
	End()
}

type loggingSpan struct {
	info *SpanInfo
	log  *slog.Logger
}

func (s *loggingSpan) End() {
	s.log.Debug("span end",
		slog.String("span", s.info.Name),
		slog.String("span_id", s.info.ID),
		slog.Duration("duration", time.Since(s.info.Start)))
}

// SpanInfo holds information about a tracing span.
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

// WithSpan attaches a new SpanInfo to ctx, nesting under any span
// already present, and returns the updated context alongside it.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		info.ParentID = parent.ID
	}
	return context.WithValue(ctx, spanIDKey{}, info), info
}

// StartSpan is WithSpan for callers that only need the Span handle to
// defer End() on, not the SpanInfo itself.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, spanName)
	log := getTraceLogFromContext(ctx)
	log.Debug("span start", slog.String("span", info.Name), slog.String("span_id", info.ID))
	return ctx, &loggingSpan{info: info, log: log}
}

// TraceEvent logs a structured event against the context's trace
// logger, tagged with the current span's ID if one is active.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	log := getTraceLogFromContext(ctx)
	if info, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		attrs = append(attrs, slog.String("span_id", info.ID))
	}
	log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs err against the context's trace logger.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	log := getTraceLogFromContext(ctx)
	log.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

// SetTracingEnabled sets TracingEnabled; it exists so callers can flip
// the flag without a build-tag-specific code path. In this build the
// span and event functions log regardless of the flag; only the
// notrace build actually disables tracing, at compile time.
func SetTracingEnabled(enabled bool) {
	TracingEnabled = enabled
}

func generateSpanID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}

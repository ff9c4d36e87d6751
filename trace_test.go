package xmlscan

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	ctx = WithTraceLogger(ctx, logger)

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	tlog.Debug("test message")

	if TracingEnabled {
		require.Contains(t, buf.String(), "test message")
	}
}

func TestWithSpan(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing disabled in this build")
	}

	ctx := context.Background()

	ctx, info := WithSpan(ctx, "test_operation")
	require.NotEmpty(t, info.ID)
	require.Equal(t, "test_operation", info.Name)
	require.Empty(t, info.ParentID)
	require.False(t, info.Start.IsZero())

	_, info2 := WithSpan(ctx, "nested_operation")
	require.Equal(t, info.ID, info2.ParentID)
	require.NotEqual(t, info.ID, info2.ID)
}

func TestStartSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)
	_, span := StartSpan(ctx, "test_function")

	time.Sleep(time.Millisecond)
	span.End()

	output := buf.String()
	if TracingEnabled {
		require.Contains(t, output, "span start")
		require.Contains(t, output, "span end")
		require.Contains(t, output, "test_function")
		require.Contains(t, output, "duration")
	}
}

func TestTraceEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)
	ctx, _ = WithSpan(ctx, "test_span")

	TraceEvent(ctx, "processing data",
		slog.String("data_type", "xml"),
		slog.Int("size", 1024),
	)

	output := buf.String()
	if TracingEnabled {
		require.Contains(t, output, "processing data")
		require.Contains(t, output, "xml")
		require.Contains(t, output, "1024")
		require.Contains(t, output, "span_id")
	} else {
		require.Empty(t, output)
	}
}

func TestTraceError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)
	ctx, _ = WithSpan(ctx, "error_span")

	TraceError(ctx, errors.New("test error"), "error occurred", slog.String("component", "parser"))

	output := buf.String()
	if TracingEnabled {
		require.Contains(t, output, "error occurred")
		require.Contains(t, output, "test error")
		require.Contains(t, output, "component")
	} else {
		require.Empty(t, output)
	}
}

func TestNullLogger(t *testing.T) {
	ctx := context.Background()

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	require.NotPanics(t, func() {
		tlog.Debug("this should not output anything")
		TraceEvent(ctx, "test event")
		TraceError(ctx, errors.New("test"), "test error")
	})
}

func TestSpanIDGeneration(t *testing.T) {
	if !TracingEnabled {
		t.Skip("tracing disabled in this build")
	}
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateSpanID()
		require.NotEmpty(t, id)
		require.Len(t, id, 16)
		require.False(t, ids[id], "span id collision: %s", id)
		ids[id] = true
	}
}

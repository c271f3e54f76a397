package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestInit_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Service: "storefront-test", Output: &buf})

	Info(context.Background()).Str("key", "value").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "storefront-test", entry["service"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "hello", entry["message"])
}

func TestWithContext_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Service: "storefront-test", Output: &buf})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	Warn(ctx).Msg("traced")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, traceID.String(), entry["trace_id"])
	assert.Equal(t, spanID.String(), entry["span_id"])
}

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Service: "storefront-test", Output: &buf})
	SetLevel("error")
	defer SetLevel("info")

	Info(context.Background()).Msg("dropped")
	assert.Empty(t, buf.String())

	Error(context.Background()).Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

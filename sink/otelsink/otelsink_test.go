package otelsink_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/gmbytes/logerr"
	"github.com/gmbytes/logerr/fields"
	"github.com/gmbytes/logerr/sink/otelsink"
)

func attrValue(t *testing.T, attrs []attribute.KeyValue, key string) string {
	t.Helper()
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.AsString()
		}
	}
	t.Fatalf("attribute %q not found", key)
	return ""
}

func TestSink_RecordsSpanEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := provider.Tracer("otelsink_test").Start(context.Background(), "op")
	sink := otelsink.NewSink()
	sink.Emit(ctx, logerr.NewEvent(errors.New("My error"), "The connection was dropped",
		logerr.WithFields(logerr.String("shard", "7"))))
	span.End()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)
	events := spans[0].Events()
	assert.Len(t, events, 1)

	assert.Equal(t, "The connection was dropped", events[0].Name)
	assert.Equal(t, "ERROR", attrValue(t, events[0].Attributes, otelsink.LevelKey))
	assert.Equal(t, "My error", attrValue(t, events[0].Attributes, fields.KeyErrorMessage))
	assert.Equal(t, "", attrValue(t, events[0].Attributes, fields.KeyErrorSourceChain))
	assert.Equal(t, "7", attrValue(t, events[0].Attributes, "shard"))
}

func TestSink_CustomLevel(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := provider.Tracer("otelsink_test").Start(context.Background(), "op")
	otelsink.NewSink().Emit(ctx, logerr.NewEvent(nil, "warned",
		logerr.WithLevel(logerr.WARN)))
	span.End()

	events := recorder.Ended()[0].Events()
	assert.Len(t, events, 1)
	assert.Equal(t, "WARN", attrValue(t, events[0].Attributes, otelsink.LevelKey))
}

func TestSink_NoRecordingSpan(t *testing.T) {
	// 无 span 的 ctx：丢弃而不是 panic
	assert.NotPanics(t, func() {
		otelsink.NewSink().Emit(context.Background(), logerr.NewEvent(errors.New("x"), "m"))
	})
}

// Package otelsink 把上报事件记录为当前 OpenTelemetry span 的 span event。
package otelsink

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gmbytes/logerr"
)

// LevelKey span event 上承载事件级别的属性名。
const LevelKey = "level"

var _ logerr.ISink = (*Sink)(nil)

// Sink 从 ctx 取当前 span，把事件作为 span event 附加其上。
// ctx 中没有处于记录状态的 span 时事件被丢弃，去向由宿主的采样策略决定。
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (ss *Sink) Emit(ctx context.Context, event *logerr.Event) {
	if event == nil || event.Level == logerr.NONE {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(event.Fields)+1)
	attrs = append(attrs, attribute.String(LevelKey, event.Level.String()))
	for _, f := range event.Fields {
		attrs = append(attrs, attribute.String(f.Key, f.Value))
	}

	span.AddEvent(event.Message,
		trace.WithTimestamp(event.Time),
		trace.WithAttributes(attrs...))
}

package logerr

import "context"

// ISink 事件接收端。实现方负责格式化与落地，本库每次上报只调用一次 Emit，
// 不重试不缓冲。并发安全性由实现方保证。
type ISink interface {
	Emit(ctx context.Context, event *Event)
}

var _ ISink = (*NopSink)(nil)

// NopSink 丢弃一切事件的 sink。
type NopSink struct{}

func (ss *NopSink) Emit(_ context.Context, _ *Event) {}

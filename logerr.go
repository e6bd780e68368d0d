// Package logerr 把任意错误值提炼为固定的三个保留字段并合入一次结构化上报事件：
//
//   - error.message      错误的可读描述
//   - error.details      错误的调试细节
//   - error.source_chain 底层原因链
//
// 提取是纯函数，事件构造后交给绑定的 ISink 一次性发出，本库不重试不缓冲。
//
// 用法：
//
//	logerr.Report(ctx, err, "The connection was dropped")
//	logerr.Report(ctx, err, "flush failed",
//	    logerr.WithLevel(logerr.WARN),
//	    logerr.WithFields(logerr.String("shard", "7")))
package logerr

import (
	"context"
	"fmt"
	"sync/atomic"
)

var globalSink atomic.Pointer[ISink]

func init() {
	sink := ISink(NewSimpleSink())
	globalSink.Store(&sink)
}

// BindGlobalSink 绑定进程级 sink，由宿主在启动期调用。
func BindGlobalSink(sink ISink) {
	if sink == nil {
		panic("bind global sink with nil")
	}

	globalSink.Store(&sink)
}

func getSink() ISink {
	sink := globalSink.Load()
	if sink == nil {
		// 兜底默认 sink，避免 nil pointer
		defaultSink := ISink(NewSimpleSink())
		globalSink.Store(&defaultSink)
		return defaultSink
	}
	return *sink
}

// Report 上报一个错误：构造含三个保留字段的事件并发往全局 sink。
// 级别缺省 ERROR，额外字段与级别经 opts 指定。
func Report(ctx context.Context, err error, msg string, opts ...Option) {
	getSink().Emit(ctx, NewEvent(err, msg, opts...))
}

// Reportf 同 Report，消息经 fmt.Sprintf 格式化，级别固定为缺省 ERROR。
func Reportf(ctx context.Context, err error, format string, args ...any) {
	getSink().Emit(ctx, NewEvent(err, fmt.Sprintf(format, args...)))
}

// Reporter 绑定到显式 sink 的上报器，供不依赖全局状态的调用方使用。
type Reporter struct {
	sink ISink
}

// NewReporter 创建绑定 sink 的上报器，sink 为 nil 时使用内置 SimpleSink。
func NewReporter(sink ISink) *Reporter {
	if sink == nil {
		sink = NewSimpleSink()
	}
	return &Reporter{sink: sink}
}

func (ss *Reporter) Report(ctx context.Context, err error, msg string, opts ...Option) {
	ss.sink.Emit(ctx, NewEvent(err, msg, opts...))
}

func (ss *Reporter) Reportf(ctx context.Context, err error, format string, args ...any) {
	ss.sink.Emit(ctx, NewEvent(err, fmt.Sprintf(format, args...)))
}

// Package slogsink 把上报事件转发给标准库 log/slog。
package slogsink

import (
	"context"
	"log/slog"

	"github.com/gmbytes/logerr"
)

// LevelTrace slog 没有 TRACE，按惯例取低于 DEBUG 的扩展级别。
const LevelTrace = slog.Level(-8)

var _ logerr.ISink = (*Sink)(nil)

// Sink 将事件经 LogAttrs 写入绑定的 slog.Logger，字段一一映射为 slog.Attr。
type Sink struct {
	logger *slog.Logger
}

// NewSink 创建 sink，logger 为 nil 时使用 slog.Default()。
func NewSink(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{logger: logger}
}

func (ss *Sink) Emit(ctx context.Context, event *logerr.Event) {
	if event == nil || event.Level == logerr.NONE {
		return
	}

	level := toSlogLevel(event.Level)
	if !ss.logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(event.Fields))
	for _, f := range event.Fields {
		attrs = append(attrs, slog.String(f.Key, f.Value))
	}
	ss.logger.LogAttrs(ctx, level, event.Message, attrs...)
}

func toSlogLevel(level logerr.Level) slog.Level {
	switch level {
	case logerr.TRACE:
		return LevelTrace
	case logerr.DEBUG:
		return slog.LevelDebug
	case logerr.INFO:
		return slog.LevelInfo
	case logerr.WARN:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

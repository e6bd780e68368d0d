// Package zerologsink 把上报事件转发给 github.com/rs/zerolog。
package zerologsink

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gmbytes/logerr"
)

var _ logerr.ISink = (*Sink)(nil)

// Sink 将事件按级别写入绑定的 zerolog.Logger，字段映射为字符串键值。
type Sink struct {
	logger zerolog.Logger
}

func NewSink(logger zerolog.Logger) *Sink {
	return &Sink{logger: logger}
}

func (ss *Sink) Emit(_ context.Context, event *logerr.Event) {
	if event == nil || event.Level == logerr.NONE {
		return
	}

	e := ss.logger.WithLevel(toZerologLevel(event.Level))
	for _, f := range event.Fields {
		e = e.Str(f.Key, f.Value)
	}
	e.Msg(event.Message)
}

func toZerologLevel(level logerr.Level) zerolog.Level {
	switch level {
	case logerr.TRACE:
		return zerolog.TraceLevel
	case logerr.DEBUG:
		return zerolog.DebugLevel
	case logerr.INFO:
		return zerolog.InfoLevel
	case logerr.WARN:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

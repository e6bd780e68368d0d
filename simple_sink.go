package logerr

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

var _ ISink = (*SimpleSink)(nil)

// SimpleSink 内置的最简 sink：单行文本输出，
// ERROR 及以上走 stderr，其余走 stdout。未显式绑定 sink 时作为兜底。
type SimpleSink struct {
	out    io.Writer
	errOut io.Writer
}

func NewSimpleSink() *SimpleSink {
	return &SimpleSink{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetOutput 重定向输出，供测试使用。
func (ss *SimpleSink) SetOutput(out, errOut io.Writer) {
	ss.out = out
	ss.errOut = errOut
}

func (ss *SimpleSink) Emit(_ context.Context, event *Event) {
	if event == nil || event.Level == NONE {
		return
	}

	var sb strings.Builder
	sb.WriteString(event.Time.Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(event.Level.String())
	sb.WriteString("] ")
	sb.WriteString(event.Message)
	for _, f := range event.Fields {
		sb.WriteString(" ")
		sb.WriteString(f.Key)
		sb.WriteString("=")
		sb.WriteString(f.Value)
	}

	w := ss.out
	if event.Level >= ERROR {
		w = ss.errOut
	}
	_, _ = fmt.Fprintln(w, sb.String())
}

package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gmbytes/logerr"
)

var _ logerr.ISink = (*Sink)(nil)

// Formatter 把事件格式化为单行文本。
type Formatter func(event *logerr.Event) string

// Option 控制台 sink 配置。
type Option struct {
	// Formatter 格式化器名，"Plain" 或 "Color"，缺省 Color。
	Formatter string
	// MinLevel 低于此级别的事件被过滤，缺省 INFO。
	MinLevel logerr.Level
	// ErrorLevel 达到此级别的事件写 stderr，其余写 stdout，缺省 ERROR。
	ErrorLevel logerr.Level
}

// Sink 控制台输出 sink，按级别分流 stdout / stderr。
type Sink struct {
	lock      sync.Mutex
	option    *Option
	formatter Formatter
	out       io.Writer
	errOut    io.Writer
}

func NewSink() *Sink {
	sink := &Sink{
		option: &Option{
			Formatter:  "Color",
			MinLevel:   logerr.INFO,
			ErrorLevel: logerr.ERROR,
		},
		formatter: ColorFormatter,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	return sink
}

// SetOption 更新配置并重新解析格式化器。
func (ss *Sink) SetOption(opt *Option) {
	if opt == nil {
		return
	}

	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.option = opt
	ss.checkOption()
}

// SetOutput 重定向输出，供测试使用。
func (ss *Sink) SetOutput(out, errOut io.Writer) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.out = out
	ss.errOut = errOut
}

func (ss *Sink) checkOption() {
	switch ss.option.Formatter {
	case "Plain":
		ss.formatter = PlainFormatter
	default:
		ss.formatter = ColorFormatter
	}

	if ss.option.MinLevel == logerr.NONE {
		ss.option.MinLevel = logerr.INFO
	}
	if ss.option.ErrorLevel == logerr.NONE {
		ss.option.ErrorLevel = logerr.ERROR
	}
}

func (ss *Sink) Emit(_ context.Context, event *logerr.Event) {
	if event == nil || event.Level == logerr.NONE {
		return
	}

	ss.lock.Lock()
	curOption := ss.option
	formatter := ss.formatter
	out := ss.out
	errOut := ss.errOut
	ss.lock.Unlock()

	if event.Level < curOption.MinLevel {
		return
	}

	if formatter == nil {
		formatter = ColorFormatter
	}
	message := formatter(event)

	if event.Level < curOption.ErrorLevel {
		_, _ = fmt.Fprintln(out, message)
	} else {
		_, _ = fmt.Fprintln(errOut, message)
	}
}

// PlainFormatter 无色单行格式：时间 [级别] 消息 | k=v ...
func PlainFormatter(event *logerr.Event) string {
	var sb strings.Builder
	sb.WriteString(event.Time.Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(event.Level.String())
	sb.WriteString("] ")
	sb.WriteString(event.Message)
	for i, f := range event.Fields {
		if i == 0 {
			sb.WriteString(" |")
		}
		sb.WriteString(" ")
		sb.WriteString(f.Key)
		sb.WriteString("=")
		sb.WriteString(f.Value)
	}
	return sb.String()
}

var levelColors = map[logerr.Level]string{
	logerr.TRACE: "\033[90m",
	logerr.DEBUG: "\033[36m",
	logerr.INFO:  "\033[32m",
	logerr.WARN:  "\033[33m",
	logerr.ERROR: "\033[31m",
}

// ColorFormatter 按级别着色的单行格式。
func ColorFormatter(event *logerr.Event) string {
	color, ok := levelColors[event.Level]
	if !ok {
		return PlainFormatter(event)
	}
	return color + PlainFormatter(event) + "\033[0m"
}

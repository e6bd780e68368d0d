package logerr

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/gmbytes/logerr/fields"
)

// Level 事件严重级别。
type Level int8

const (
	NONE Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{
	NONE:  "NONE",
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

func (l Level) String() string {
	if l < NONE || l > ERROR {
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}
	return levelNames[l]
}

// Field 单个命名字段，值统一为字符串。
type Field struct {
	Key   string
	Value string
}

// String 构造字符串字段。
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Stringer 构造字段，取 value.String() 作为值。
func Stringer(key string, value fmt.Stringer) Field {
	if value == nil {
		return Field{Key: key}
	}
	return Field{Key: key, Value: value.String()}
}

// Any 构造任意值字段。字符串原样保留，error/fmt.Stringer 取各自文本，
// 其余值经 JSON 编码（对应调试捕获语义），编码失败回退 %v。
func Any(key string, value any) Field {
	return Field{Key: key, Value: encodeFieldValue(value)}
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeFieldValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	if s, err := jsonAPI.MarshalToString(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Event 一次上报的事件描述：级别、消息与字段集。
// 构造后立即交给 sink，不被本库保留。
type Event struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
}

// NewEvent 从错误值构造事件：三个保留字段在前，级别默认 ERROR。
// 额外字段经 opts 追加；与保留字段同名的追加字段会被丢弃（保留字段优先），
// 追加字段之间重名则首次出现者生效。
// err 为 nil 时保留字段取空值，事件仍会构造。
func NewEvent(err error, msg string, opts ...Option) *Event {
	ev := &Event{
		Time:    time.Now(),
		Level:   ERROR,
		Message: msg,
		Fields: []Field{
			{Key: fields.KeyErrorMessage, Value: fields.ErrorMessage(err)},
			{Key: fields.KeyErrorDetails, Value: fields.ErrorDetails(err)},
			{Key: fields.KeyErrorSourceChain, Value: fields.ErrorSourceChain(err)},
		},
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Field 按名查找字段值。
func (ss *Event) Field(key string) (string, bool) {
	for _, f := range ss.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (ss *Event) hasField(key string) bool {
	_, ok := ss.Field(key)
	return ok
}

func (ss *Event) appendFields(fs ...Field) {
	for _, f := range fs {
		if ss.hasField(f.Key) {
			continue
		}
		ss.Fields = append(ss.Fields, f)
	}
}

package logerr

import "time"

// Option 事件构造期配置。
type Option func(*Event)

// WithLevel 指定事件级别，缺省为 ERROR。
func WithLevel(level Level) Option {
	return func(ev *Event) { ev.Level = level }
}

// WithFields 追加调用方自定义字段。
// 与保留字段同名的字段被丢弃，追加字段之间重名首次生效。
func WithFields(fs ...Field) Option {
	return func(ev *Event) { ev.appendFields(fs...) }
}

// WithTime 覆盖事件时间，主要供测试固定时间戳。
func WithTime(t time.Time) Option {
	return func(ev *Event) { ev.Time = t }
}

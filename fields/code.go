package fields

import "errors"

// ErrorCodeCarrier 可选接口：错误可暴露稳定错误码用于聚合。
type ErrorCodeCarrier interface {
	ErrorCode() string
}

// ErrorCode 从 error 链中提取第一个可识别错误码，没有则返回空串。
// 错误码不属于保留字段，调用方按需随 WithFields 附加。
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var carrier ErrorCodeCarrier
	if errors.As(err, &carrier) && carrier != nil {
		return carrier.ErrorCode()
	}
	return ""
}

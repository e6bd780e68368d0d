package fields

import (
	"fmt"
	"strings"
)

// 保留字段名，上报事件的稳定输出契约。
const (
	// KeyErrorMessage 错误的可读描述（Error() 原文）。
	KeyErrorMessage = "error.message"
	// KeyErrorDetails 错误的调试细节表示。
	KeyErrorDetails = "error.details"
	// KeyErrorSourceChain 错误的底层原因链。
	KeyErrorSourceChain = "error.source_chain"
)

// SourceChainSeparator 原因链各环节之间的连接符，属于公开契约，不可变更。
const SourceChainSeparator = ": "

// MaxSourceChainDepth 原因链遍历上限。
// 超限说明调用方构造了环状或异常深的错误链，链会被截断但上报不会失败。
const MaxSourceChainDepth = 100

// chainTruncated 链被截断时追加的末尾环节。
const chainTruncated = "..."

// ErrorMessage 返回错误的可读描述，即 Error() 的原文，不做任何加工。
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ErrorDetails 返回错误的调试表示。
//
// 实现了 fmt.Formatter 的错误走 %+v（生态惯例的详细格式，可携带堆栈等），
// 其余错误走 %#v（Go 语法的值转储，对普通错误也能展示类型与内部字段）。
func ErrorDetails(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := err.(fmt.Formatter); ok {
		return fmt.Sprintf("%+v", err)
	}
	return fmt.Sprintf("%#v", err)
}

// ErrorSourceChain 返回错误的原因链：从直接原因（不含错误本身）开始，
// 逐层取底层原因，各环节的 Error() 文本以 SourceChainSeparator 连接。
// 无原因时返回空串。超过 MaxSourceChainDepth 时截断并以 "..." 结尾。
func ErrorSourceChain(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	depth := 0
	for cause := unwrapOnce(err); cause != nil; cause = unwrapOnce(cause) {
		if depth > 0 {
			sb.WriteString(SourceChainSeparator)
		}
		if depth >= MaxSourceChainDepth {
			sb.WriteString(chainTruncated)
			break
		}
		sb.WriteString(cause.Error())
		depth++
	}
	return sb.String()
}

// SourceChain 返回原因链的切片形式，顺序与 ErrorSourceChain 一致，
// 供直接组装原始事件或测试使用。遍历同样受 MaxSourceChainDepth 约束。
// 遍历过程只借用错误值，不持有也不修改。
func SourceChain(err error) []error {
	if err == nil {
		return nil
	}

	var chain []error
	for cause := unwrapOnce(err); cause != nil; cause = unwrapOnce(cause) {
		if len(chain) >= MaxSourceChainDepth {
			break
		}
		chain = append(chain, cause)
	}
	return chain
}

// unwrapOnce 取一层底层原因。
// 依次探测 Unwrap() error 与 Cause() error（github.com/pkg/errors 惯例）。
// Unwrap() []error 的多因错误视为链的终点：其 Error() 文本已包含各分支。
func unwrapOnce(err error) error {
	switch v := err.(type) {
	case interface{ Unwrap() error }:
		return v.Unwrap()
	case interface{ Cause() error }:
		return v.Cause()
	}
	return nil
}

package fields

// Deref 对"装着错误但自身不是 error"的容器做一次显式解引用。
//
// 规则（按序探测，最多一步，不递归）：
//   - v 本身是 error：原样返回，即使它还能继续解包。
//   - v 实现 Err() error（标准库容器惯例，如 bufio.Scanner、sql.Rows）：取其错误。
//   - v 实现 Unwrap() error：取其错误。
//
// 容器内没有错误或 v 不属于以上任何一类时返回 (nil, false)。
// 上报入口不会隐式调用本函数，调用方必须显式解包以保持契约清晰。
func Deref(v any) (error, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case error:
		return t, true
	case interface{ Err() error }:
		err := t.Err()
		return err, err != nil
	case interface{ Unwrap() error }:
		err := t.Unwrap()
		return err, err != nil
	}
	return nil, false
}

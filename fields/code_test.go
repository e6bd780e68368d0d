package fields_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmbytes/logerr/fields"
)

// codedError 携带稳定错误码的错误。
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string     { return e.msg }
func (e *codedError) ErrorCode() string { return e.code }

func TestErrorCode(t *testing.T) {
	err := &codedError{code: "TIMEOUT", msg: "deadline exceeded"}
	assert.Equal(t, "TIMEOUT", fields.ErrorCode(err))

	// 链上任意一层的错误码都能被取到
	wrapped := fmt.Errorf("rpc call: %w", err)
	assert.Equal(t, "TIMEOUT", fields.ErrorCode(wrapped))

	assert.Equal(t, "", fields.ErrorCode(stderrors.New("plain")))
	assert.Equal(t, "", fields.ErrorCode(nil))
}

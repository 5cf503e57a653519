package services

import (
	"fmt"
	"strings"

	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
)

var (
	// ErrVideoNotFound 表示目标视频不存在，对当前请求为致命错误，不重试。
	ErrVideoNotFound = errors.NotFound("VIDEO_NOT_FOUND", "video not found")
)

// ValidationError 携带本次请求累积的全部校验错误。
// 调用方应完整呈现所有错误，而非仅第一条。
type ValidationError struct {
	errs []validation.Error
}

// NewValidationError 由 Notification 构造校验失败错误。
func NewValidationError(n *validation.Notification) *ValidationError {
	return &ValidationError{errs: n.Errors()}
}

func (e *ValidationError) Error() string {
	if len(e.errs) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.errs))
	for i, err := range e.errs {
		messages[i] = err.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Errors 返回按累积顺序排列的错误列表。
func (e *ValidationError) Errors() []validation.Error {
	return e.errs
}

// NewInternalError 构造校验通过后媒体存储/持久化意外失败的错误，
// 内嵌视频标识与原始原因，向调用方原样传播。
func NewInternalError(videoID uuid.UUID, cause error) *errors.Error {
	return errors.InternalServer("VIDEO_INTERNAL_ERROR",
		fmt.Sprintf("an error was observed while saving video [video_id:%s]", videoID)).
		WithCause(cause)
}

package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidQuiz  = errors.New("quiz has no questions")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("permission denied")
	ErrUpstream     = errors.New("upstream failure")
)

var (
	ErrUserExists    = &kindError{msg: "User already exists", kind: ErrConflict}
	ErrBadCredential = &kindError{msg: "Invalid credentials", kind: ErrUnauthorized}
	ErrBadRefresh    = &kindError{msg: "Invalid refresh token", kind: ErrUnauthorized}
)

// kindError 携带面向前端的提示文案，并可用 errors.Is 匹配其类别
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Invalid 包装参数错误，message 直接返回给前端
func Invalid(format string, args ...interface{}) error {
	return &kindError{msg: fmt.Sprintf(format, args...), kind: ErrInvalidInput}
}

// Upstream 包装数据库等外部依赖的错误
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

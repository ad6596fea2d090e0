package domain

import "errors"

// ErrNotFound 查不到记录，或记录属于别人（对外不可区分）
var ErrNotFound = errors.New("not found")

// ValidationError 字段级校验失败（HTTP 400）
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

func Invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

// DuplicateError 唯一约束冲突（HTTP 400）
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return "duplicate value for " + e.Field }

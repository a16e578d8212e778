package domain

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeForbidden    ErrCode = "forbidden"
	CodeUnauthorized ErrCode = "unauthorized"
	CodeConflict     ErrCode = "conflict"
	CodeInvalidState ErrCode = "invalid_state"
)

// AppError is a failure the caller can act on. Message and Meta are shown
// to API clients, so neither may carry internals.
type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func newErr(code ErrCode, msg string) error { return &AppError{Code: code, Message: msg} }

func ErrValidation(msg string) error { return newErr(CodeValidation, msg) }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error     { return newErr(CodeNotFound, msg) }
func ErrForbidden(msg string) error    { return newErr(CodeForbidden, msg) }
func ErrUnauthorized(msg string) error { return newErr(CodeUnauthorized, msg) }
func ErrConflict(msg string) error     { return newErr(CodeConflict, msg) }
func ErrInvalidState(msg string) error { return newErr(CodeInvalidState, msg) }

// ErrInvalidParam rejects one request parameter; in is "path" or "query".
func ErrInvalidParam(in, name, reason string) error {
	return ErrValidationMeta("invalid "+in+" param", map[string]string{name: reason})
}

// AsAppError unwraps err to its AppError, if any.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf reports the AppError code behind err, or "" for anything else.
func CodeOf(err error) ErrCode {
	if ae, ok := AsAppError(err); ok {
		return ae.Code
	}
	return ""
}

package service

import (
	"errors"
	"fmt"
)

// ErrorKind 决定 HTTP 状态码
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuth          ErrorKind = "auth"
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	KindUpstream      ErrorKind = "upstream"
	KindNotFound      ErrorKind = "not_found"
	KindInternal      ErrorKind = "internal"
)

// 业务错误码
const (
	CodeInvalidRequest   = "ERR_INVALID_REQUEST"
	CodeMissingField     = "ERR_MISSING_FIELD"
	CodeUnsupportedSize  = "ERR_UNSUPPORTED_SIZE"
	CodeFileTooLarge     = "ERR_FILE_TOO_LARGE"
	CodeInvalidSelection = "ERR_INVALID_SELECTION"
	CodeInvalidAction    = "ERR_INVALID_ACTION"
	CodeUnauthorized     = "ERR_UNAUTHORIZED"
	CodeSessionExpired   = "ERR_SESSION_EXPIRED"
	CodeQuotaExceeded    = "ERR_QUOTA_EXCEEDED"
	CodeUpstreamFailed   = "ERR_UPSTREAM_FAILED"
	CodeUsageUnavailable = "ERR_USAGE_UNAVAILABLE"
	CodeStorageFailed    = "ERR_STORAGE_FAILED"
	CodeNotFound         = "ERR_NOT_FOUND"
	CodeInternal         = "ERR_INTERNAL_ERROR"
)

// Error 服务层错误，Remaining 仅在额度不足时有意义
type Error struct {
	Kind      ErrorKind
	Code      string
	Message   string
	Field     string
	Remaining int64
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a service error from err.
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func validationError(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func missingField(field string) *Error {
	return &Error{Kind: KindValidation, Code: CodeMissingField, Message: field + " is required", Field: field}
}

func internalError(code, message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: message, Err: err}
}

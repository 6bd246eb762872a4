package synthesis

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a provider failure.
type Kind string

const (
	// KindUpstream 服务商返回非 2xx 或网络失败
	KindUpstream Kind = "upstream"
	// KindBadResponse 服务商返回成功但没有可解码的图片
	KindBadResponse Kind = "bad_response"
)

// Error 服务商调用失败
type Error struct {
	Kind       Kind
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s (http %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err.
func KindOf(err error) (Kind, bool) {
	var synthErr *Error
	if errors.As(err, &synthErr) {
		return synthErr.Kind, true
	}
	return "", false
}

func upstreamError(provider string, status int, err error) *Error {
	return &Error{Kind: KindUpstream, Provider: provider, StatusCode: status, Err: err}
}

func badResponseError(provider string, err error) *Error {
	return &Error{Kind: KindBadResponse, Provider: provider, Err: err}
}

// Client 每次调用只请求一次服务商，不做内部重试
type Client interface {
	Synthesize(ctx context.Context, image []byte, prompt, size string) ([]byte, error)
}

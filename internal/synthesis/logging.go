package synthesis

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const bodySnippetLimit = 200

// callLogger 带上服务商、模型与请求规格的日志条目
func callLogger(ctx context.Context, provider, model, size string, promptLen, imageLen int) *logrus.Entry {
	fields := logrus.Fields{
		"provider":      provider,
		"size":          size,
		"prompt_length": promptLen,
		"image_bytes":   imageLen,
	}
	if trimmed := strings.TrimSpace(model); trimmed != "" {
		fields["model"] = trimmed
	}

	entry := logrus.WithFields(fields)
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	return entry
}

// bodySnippet 截断服务商响应体，避免日志中出现整段 base64
func bodySnippet(body []byte) string {
	value := strings.TrimSpace(string(body))
	runes := []rune(value)
	if len(runes) <= bodySnippetLimit {
		return value
	}
	return string(runes[:bodySnippetLimit]) + "..."
}

package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"portrait/internal/utils"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	providerOpenAI        = "openai"
	defaultOpenAIURL      = "https://api.openai.com/v1/images/edits"
	defaultOpenAIModel    = "gpt-image-1"
	maxOpenAIResponseSize = 64 << 20
)

type openAIImageData struct {
	B64JSON string `json:"b64_json"`
	URL     string `json:"url"`
}

type openAIImagesResponse struct {
	Data []openAIImageData `json:"data"`
}

// OpenAIClient calls the images/edits endpoint with the source photo.
type OpenAIClient struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient creates a client; endpoint and model fall back to defaults.
func NewOpenAIClient(apiKey, endpoint, model string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is not configured")
	}
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultOpenAIURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClient{
		apiKey:   strings.TrimSpace(apiKey),
		endpoint: strings.TrimSpace(endpoint),
		model:    strings.TrimSpace(model),
		// 图片编辑耗时较长，不设置过短的超时
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

func (c *OpenAIClient) Synthesize(ctx context.Context, image []byte, prompt, size string) ([]byte, error) {
	logger := callLogger(ctx, providerOpenAI, c.model, size, len(prompt), len(image))

	body, contentType, err := buildEditForm(c.model, prompt, size, image)
	if err != nil {
		return nil, fmt.Errorf("build openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build openai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("openai request failed")
		return nil, upstreamError(providerOpenAI, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxOpenAIResponseSize))
	if err != nil {
		logger.WithError(err).Error("read openai response failed")
		return nil, upstreamError(providerOpenAI, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   bodySnippet(raw),
		}).Error("openai returned error status")
		return nil, upstreamError(providerOpenAI, resp.StatusCode, fmt.Errorf("openai error: %s", bodySnippet(raw)))
	}

	var payload openAIImagesResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, badResponseError(providerOpenAI, fmt.Errorf("decode response: %w", err))
	}
	if len(payload.Data) == 0 || strings.TrimSpace(payload.Data[0].B64JSON) == "" {
		logger.WithField("body", bodySnippet(raw)).Warn("openai response without image payload")
		return nil, badResponseError(providerOpenAI, errors.New("invalid response: missing b64_json"))
	}

	// 部分兼容网关返回 data URL 形式
	decoded, err := utils.DecodeImagePayload(payload.Data[0].B64JSON)
	if err != nil {
		return nil, badResponseError(providerOpenAI, fmt.Errorf("decode image: %w", err))
	}

	logger.WithField("duration", time.Since(start).String()).Info("openai image generated")
	return decoded, nil
}

func buildEditForm(model, prompt, size string, image []byte) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fields := [][2]string{
		{"model", model},
		{"prompt", prompt},
		{"size", size},
	}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}

	mimeType := http.DetectContentType(image)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="image%s"`, extensionForMime(mimeType)))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}

func extensionForMime(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])) {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

var _ Client = (*OpenAIClient)(nil)

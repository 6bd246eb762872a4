package synthesis

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

//文档:https://www.volcengine.com/docs/82379/1824121

const (
	providerVolcengine     = "volcengine"
	defaultVolcengineModel = "doubao-seedream-4-0-250828"
	// 服务商要求总像素不低于 1280x720
	volcengineMinPixels  = 1280 * 720
	volcengineFallback   = "2K"
	maxDownloadImageSize = 64 << 20
)

// VolcengineClient generates images through the Ark runtime.
type VolcengineClient struct {
	client     *arkruntime.Client
	model      string
	httpClient *http.Client
}

// NewVolcengineClient creates a client for the Ark image generation API.
func NewVolcengineClient(apiKey, model string) (*VolcengineClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("volcengine api key is not configured")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultVolcengineModel
	}
	return &VolcengineClient{
		client:     arkruntime.NewClientWithApiKey(strings.TrimSpace(apiKey)),
		model:      strings.TrimSpace(model),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

func (c *VolcengineClient) Synthesize(ctx context.Context, image []byte, prompt, size string) ([]byte, error) {
	logger := callLogger(ctx, providerVolcengine, c.model, size, len(prompt), len(image))

	dataURL := fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(image), base64.StdEncoding.EncodeToString(image))
	var sequential volcModel.SequentialImageGeneration = "disabled"
	req := volcModel.GenerateImagesRequest{
		Model:                     c.model,
		Prompt:                    prompt,
		Image:                     []string{dataURL},
		Size:                      volcengine.String(volcengineSize(size)),
		ResponseFormat:            volcengine.String(volcModel.GenerateImagesResponseFormatURL),
		Watermark:                 volcengine.Bool(false),
		SequentialImageGeneration: &sequential,
	}

	stream, err := c.client.GenerateImagesStreaming(ctx, req)
	if err != nil {
		logger.WithError(err).Error("volcengine request failed")
		return nil, upstreamError(providerVolcengine, 0, err)
	}
	defer stream.Close()

	var imageURL string
	for {
		recv, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.WithError(err).Error("volcengine stream failed")
			return nil, upstreamError(providerVolcengine, 0, err)
		}
		switch recv.Type {
		case "image_generation.partial_failed":
			message := "partial failed"
			if recv.Error != nil {
				message = fmt.Sprintf("%s: %s", recv.Error.Code, recv.Error.Message)
			}
			logger.WithField("error", message).Error("volcengine generation failed")
			return nil, upstreamError(providerVolcengine, 0, errors.New(message))
		case "image_generation.partial_succeeded":
			if recv.Error == nil && recv.Url != nil && imageURL == "" {
				imageURL = strings.TrimSpace(*recv.Url)
			}
		}
	}

	if imageURL == "" {
		return nil, badResponseError(providerVolcengine, errors.New("invalid response: no image url"))
	}

	data, err := c.download(ctx, imageURL)
	if err != nil {
		logger.WithError(err).Error("download volcengine image failed")
		return nil, badResponseError(providerVolcengine, err)
	}
	logger.Info("volcengine image generated")
	return data, nil
}

func (c *VolcengineClient) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadImageSize))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("download image: empty body")
	}
	return data, nil
}

// volcengineSize 像素数低于服务商下限的尺寸回退到 2K
func volcengineSize(size string) string {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(size)), "x", 2)
	if len(parts) != 2 {
		return volcengineFallback
	}
	width, errW := strconv.Atoi(parts[0])
	height, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || width*height < volcengineMinPixels {
		return volcengineFallback
	}
	return fmt.Sprintf("%dx%d", width, height)
}

var _ Client = (*VolcengineClient)(nil)

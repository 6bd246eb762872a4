package synthesis

import (
	"fmt"
	"portrait/internal/config"
	"strings"
)

const (
	DriverOpenAI     = "openai"
	DriverVolcengine = "volcengine"
)

// NewClient instantiates the configured synthesis provider.
func NewClient(cfg config.Config) (Client, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.SynthesisDriver))
	switch driver {
	case "", DriverOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIImagesURL, cfg.OpenAIModel)
	case DriverVolcengine:
		return NewVolcengineClient(cfg.VolcengineAPIKey, cfg.VolcengineModel)
	default:
		return nil, fmt.Errorf("unsupported synthesis driver: %s", cfg.SynthesisDriver)
	}
}

package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// Supported language model providers.
const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
)

// ModelConfig selects and configures a language model provider.
type ModelConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // OpenAI-compatible endpoints only
}

// NewLanguageModel builds a langchaingo model for the configured provider.
func NewLanguageModel(ctx context.Context, cfg ModelConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("language model API key is not set")
	}

	switch cfg.Provider {
	case ProviderGoogleAI, "":
		opts := []googleai.Option{googleai.WithAPIKey(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, googleai.WithDefaultModel(cfg.Model))
		}
		return googleai.New(ctx, opts...)
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported language model provider %q", cfg.Provider)
	}
}

// CompletionFacade sends single prompts to a language model.
type CompletionFacade struct {
	model       llms.Model
	temperature float64
}

// NewCompletionFacade wraps a langchaingo model.
func NewCompletionFacade(model llms.Model, temperature float64) *CompletionFacade {
	return &CompletionFacade{model: model, temperature: temperature}
}

// Complete makes one synchronous completion call and returns the raw text.
func (f *CompletionFacade) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, f.model, prompt, llms.WithTemperature(f.temperature))
	if err != nil {
		logger.Log.Errorw("failed to get completion from language model", "error", err)
		return "", err
	}

	logger.Log.Debugw("completion received", "prompt_size", len(prompt), "response", text)
	return text, nil
}

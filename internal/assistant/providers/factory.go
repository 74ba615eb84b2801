package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultGeminiModel is used when a googleai provider names no model.
const DefaultGeminiModel = "gemini-2.5-flash"

// New builds the provider selected by cfg.Type. A missing API key yields
// ErrMissingCredentials so callers can run without a provider.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Type {
	case TypeOpenAI:
		return newOpenAI(TypeOpenAI, cfg)
	case TypeGitHubModels:
		if cfg.BaseURL == "" {
			cfg.BaseURL = GitHubModelsBaseURL
		}
		return newOpenAI(TypeGitHubModels, cfg)
	case TypeGoogleAI:
		return newGoogleAI(ctx, cfg)
	case TypeAzure:
		return NewAzureOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Type)
	}
}

func newOpenAI(name string, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingCredentials)
	}

	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s model: %w", name, err)
	}
	return NewLangChainProvider(name, llm, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
}

func newGoogleAI(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("googleai: %w", ErrMissingCredentials)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	llm, err := googleai.New(ctx, googleai.WithAPIKey(cfg.APIKey), googleai.WithDefaultModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize googleai model: %w", err)
	}
	return NewLangChainProvider(TypeGoogleAI, llm, model, cfg.Temperature, cfg.MaxTokens), nil
}

package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// LangChainProvider adapts any langchaingo model to Provider.
type LangChainProvider struct {
	name        string
	model       llms.Model
	modelName   string
	temperature float64
	maxTokens   int
}

// NewLangChainProvider wraps model. modelName may be empty to use the
// model's default.
func NewLangChainProvider(name string, model llms.Model, modelName string, temperature float64, maxTokens int) *LangChainProvider {
	return &LangChainProvider{
		name:        name,
		model:       model,
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Name returns the provider name
func (p *LangChainProvider) Name() string {
	return p.name
}

// Complete sends the system instruction and the user prompt as one exchange.
func (p *LangChainProvider) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	var opts []llms.CallOption
	if p.modelName != "" {
		opts = append(opts, llms.WithModel(p.modelName))
	}
	if p.temperature > 0 {
		opts = append(opts, llms.WithTemperature(p.temperature))
	}
	if p.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.maxTokens))
	}

	response, err := p.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("%s completion failed: %w", p.name, err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Content, nil
}

package providers

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// AzureOpenAIProvider implements the Provider interface for Azure OpenAI
type AzureOpenAIProvider struct {
	client         *azopenai.Client
	deploymentName string
	temperature    float32
	maxTokens      int32
}

// NewAzureOpenAIProvider creates a client for the deployment named in cfg.
func NewAzureOpenAIProvider(cfg Config) (*AzureOpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("azure: %w", ErrMissingCredentials)
	}
	if cfg.Endpoint == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("azure: endpoint and deployment are required")
	}

	client, err := azopenai.NewClientWithKeyCredential(cfg.Endpoint, azcore.NewKeyCredential(cfg.APIKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure OpenAI client: %w", err)
	}

	p := &AzureOpenAIProvider{
		client:         client,
		deploymentName: cfg.Deployment,
		temperature:    0.7,
		maxTokens:      2000,
	}
	if cfg.Temperature > 0 {
		p.temperature = float32(cfg.Temperature)
	}
	if cfg.MaxTokens > 0 {
		p.maxTokens = int32(cfg.MaxTokens)
	}
	return p, nil
}

func (p *AzureOpenAIProvider) Name() string {
	return TypeAzure
}

func azureMessages(systemPrompt, prompt string) []azopenai.ChatRequestMessageClassification {
	return []azopenai.ChatRequestMessageClassification{
		&azopenai.ChatRequestSystemMessage{Content: azopenai.NewChatRequestSystemMessageContent(systemPrompt)},
		&azopenai.ChatRequestUserMessage{Content: azopenai.NewChatRequestUserMessageContent(prompt)},
	}
}

// Complete implements the Provider interface
func (p *AzureOpenAIProvider) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	resp, err := p.client.GetChatCompletions(ctx, azopenai.ChatCompletionsOptions{
		Messages:       azureMessages(systemPrompt, prompt),
		MaxTokens:      to.Ptr(p.maxTokens),
		Temperature:    to.Ptr(p.temperature),
		DeploymentName: to.Ptr(p.deploymentName),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("Azure OpenAI completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil {
		return "", nil
	}
	return *resp.Choices[0].Message.Content, nil
}

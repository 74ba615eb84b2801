package providers

import (
	"context"
	"errors"
)

// ErrMissingCredentials is returned when a provider is configured without
// the key it needs to authenticate.
var ErrMissingCredentials = errors.New("provider credentials not configured")

// Provider interface for LLM providers
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// Config selects and parameterises a provider.
type Config struct {
	Type        string
	Model       string
	APIKey      string
	BaseURL     string
	Endpoint    string
	Deployment  string
	Temperature float64
	MaxTokens   int
}

// Provider types accepted by New.
const (
	TypeOpenAI       = "openai"
	TypeGoogleAI     = "googleai"
	TypeGitHubModels = "github"
	TypeAzure        = "azure"
)

// GitHubModelsBaseURL is the OpenAI-compatible endpoint of GitHub Models.
const GitHubModelsBaseURL = "https://models.inference.ai.azure.com"

package providers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// MockLLM is a mock implementation of llms.Model
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages, options)
	resp, _ := args.Get(0).(*llms.ContentResponse)
	return resp, args.Error(1)
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt, options)
	return args.String(0), args.Error(1)
}

func TestLangChainProviderComplete(t *testing.T) {
	llm := new(MockLLM)
	llm.On("GenerateContent", mock.Anything, mock.MatchedBy(func(msgs []llms.MessageContent) bool {
		return len(msgs) == 2 &&
			msgs[0].Role == llms.ChatMessageTypeSystem &&
			msgs[1].Role == llms.ChatMessageTypeHuman
	}), mock.Anything).Return(&llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "Room 101 is ready."}},
	}, nil)

	p := NewLangChainProvider(TypeGoogleAI, llm, DefaultGeminiModel, 0.2, 256)
	got, err := p.Complete(context.Background(), "system", "Is 101 ready?")

	require.NoError(t, err)
	assert.Equal(t, "Room 101 is ready.", got)
	assert.Equal(t, TypeGoogleAI, p.Name())
	llm.AssertExpectations(t)
}

func TestLangChainProviderEmptyChoices(t *testing.T) {
	llm := new(MockLLM)
	llm.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(&llms.ContentResponse{}, nil)

	got, err := NewLangChainProvider(TypeOpenAI, llm, "", 0, 0).Complete(context.Background(), "s", "p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLangChainProviderError(t *testing.T) {
	llm := new(MockLLM)
	llm.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded"))

	_, err := NewLangChainProvider(TypeOpenAI, llm, "", 0, 0).Complete(context.Background(), "s", "p")
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestNewRequiresCredentials(t *testing.T) {
	for _, typ := range []string{TypeOpenAI, TypeGitHubModels, TypeGoogleAI, TypeAzure} {
		_, err := New(context.Background(), Config{Type: typ})
		assert.ErrorIs(t, err, ErrMissingCredentials, typ)
	}

	_, err := New(context.Background(), Config{Type: "anthropic", APIKey: "k"})
	assert.ErrorContains(t, err, "unsupported provider type")
}

func TestNewOpenAI(t *testing.T) {
	p, err := New(context.Background(), Config{Type: TypeGitHubModels, APIKey: "token", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, TypeGitHubModels, p.Name())
}

func TestAzureMessages(t *testing.T) {
	msgs := azureMessages("be brief", "hello")
	require.Len(t, msgs, 2)

	system, ok := msgs[0].(*azopenai.ChatRequestSystemMessage)
	require.True(t, ok)
	require.NotNil(t, system.Content)
	body, err := json.Marshal(system)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"system","content":"be brief"}`, string(body))

	user, ok := msgs[1].(*azopenai.ChatRequestUserMessage)
	require.True(t, ok)
	body, err = json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user","content":"hello"}`, string(body))
}

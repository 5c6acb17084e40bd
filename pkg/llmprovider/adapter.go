package llmprovider

import (
	"context"
	"fmt"

	"deal-tracker/pkg/openai"
)

// OpenAIAdapter adapts an OpenAI-compatible client to the Provider interface.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting itself as name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// CreateChatCompletion implements Provider. An empty model in req means the provider's own model,
// so a chain of providers with different model names can share one request.
func (a *OpenAIAdapter) CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: fmt.Errorf("chat completion: %w", err)}
	}
	return resp, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

package llmprovider

import (
	"context"

	"deal-tracker/pkg/openai"
)

// Provider defines the interface for LLM providers.
// Every supported backend speaks the OpenAI chat completion dialect.
type Provider interface {
	// CreateChatCompletion sends a chat completion request.
	CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)

	// Name returns the provider name (e.g., "openai", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

package openai

import "context"

//go:generate mockery --name IOpenAI
type IOpenAI interface {
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
	Model() string
}

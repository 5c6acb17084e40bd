package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when neither the request nor the client names one.
	DefaultModel = "gpt-4"

	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// Chat roles on the wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

package memory

import (
	"context"

	"deal-tracker/pkg/openai"
)

// Role is the author of a Message.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleSystem
)

// String returns the wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleAssistant:
		return openai.RoleAssistant
	case RoleSystem:
		return openai.RoleSystem
	default:
		return openai.RoleUser
	}
}

// Label is the speaker tag used when history is rendered into the summarization prompt.
// Everything that is not the user speaks as "AI".
func (r Role) Label() string {
	if r == RoleUser {
		return "User"
	}
	return "AI"
}

// Message is one immutable conversation entry.
type Message struct {
	Role    Role
	Content string
}

// UserMessage, AssistantMessage and SystemMessage build a Message of the given role.
func UserMessage(content string) Message      { return Message{Role: RoleUser, Content: content} }
func AssistantMessage(content string) Message { return Message{Role: RoleAssistant, Content: content} }
func SystemMessage(content string) Message    { return Message{Role: RoleSystem, Content: content} }

func (m Message) toChat() openai.ChatMessage {
	return openai.ChatMessage{Role: m.Role.String(), Content: m.Content}
}

// Completer is the completion endpoint the manager talks to.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// Config configures a Manager. Zero values take the package defaults.
type Config struct {
	// Model is sent with both completion calls. Default DefaultModel.
	Model string
	// MaxSlots caps the history length, seeded system message included. Default DefaultMaxSlots.
	MaxSlots int
	// Persona is the content of the system message the history is seeded with. Default DefaultPersona.
	Persona string
}

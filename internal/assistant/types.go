package assistant

// AskInput is one question to the assistant.
type AskInput struct {
	// Data is the user's question.
	Data string
	// IsDashboard marks a question about the single property in Supporting.
	IsDashboard bool
	// Supporting is the JSON context. Empty means every stored deal.
	Supporting string
	// ConversationID selects a conversation of the caller. Empty means the caller's default one.
	ConversationID string
}

type AskOutput struct {
	Result         string
	ConversationID string
}

type ResetInput struct {
	ConversationID string
}

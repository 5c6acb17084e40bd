package assistant

import "errors"

var (
	ErrEmptyQuestion       = errors.New("question is empty")
	ErrMissingConversation = errors.New("conversation id is missing")
	ErrAssistantFailed     = errors.New("assistant failed to answer")
)

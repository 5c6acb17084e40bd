package http

import (
	"deal-tracker/internal/assistant"
)

// ConversationHeader selects one of the caller's conversations.
const ConversationHeader = "X-Conversation-ID"

type askReq struct {
	Data        string `json:"data"`
	IsDashboard bool   `json:"isDashBoard"`
	Supporting  string `json:"supporting"`
}

func (r askReq) toInput(conversationID string) assistant.AskInput {
	return assistant.AskInput{
		Data:           r.Data,
		IsDashboard:    r.IsDashboard,
		Supporting:     r.Supporting,
		ConversationID: conversationID,
	}
}

type askResp struct {
	Result string `json:"result"`
}

package usecase

import (
	"strings"
	"sync"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/assistant/memory"
	"deal-tracker/internal/model"
)

// session serializes calls on one conversation. memory.Manager is not safe for concurrent use.
type session struct {
	mu  sync.Mutex
	mem *memory.Manager
}

// conversationKey scopes a conversation to its caller so one user cannot reach another's memory.
func conversationKey(sc model.Scope, conversationID string) (string, error) {
	conversationID = strings.TrimSpace(conversationID)
	if sc.Anonymous() {
		if conversationID == "" {
			return "", assistant.ErrMissingConversation
		}
		return "anon/" + conversationID, nil
	}
	if conversationID == "" {
		return sc.UserID, nil
	}
	return sc.UserID + "/" + conversationID, nil
}

// acquire returns the session for key, creating it on first use.
func (uc *implUseCase) acquire(key string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.sessions.Get(key); ok {
		return s
	}
	s := &session{mem: memory.New(uc.completer, uc.memCfg)}
	uc.sessions.Add(key, s)
	return s
}

func (uc *implUseCase) drop(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions.Remove(key)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/model"
)

// Ask answers one question inside the caller's conversation.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input assistant.AskInput) (assistant.AskOutput, error) {
	if strings.TrimSpace(input.Data) == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuestion
	}

	key, err := conversationKey(sc, input.ConversationID)
	if err != nil {
		return assistant.AskOutput{}, err
	}

	supporting := input.Supporting
	if supporting == "" {
		supporting, err = uc.portfolioJSON(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Ask portfolioJSON: %v", err)
			return assistant.AskOutput{}, err
		}
	}

	s := uc.acquire(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	answer, err := s.mem.Ask(ctx, buildPrompt(input, supporting))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ask memory.Ask conversation=%s: %v", key, err)
		return assistant.AskOutput{}, fmt.Errorf("%w: %w", assistant.ErrAssistantFailed, err)
	}

	uc.l.Infof(ctx, "uc.Ask conversation=%s history=%d", key, len(s.mem.History()))
	return assistant.AskOutput{Result: answer, ConversationID: input.ConversationID}, nil
}

// Reset forgets a conversation. Resetting an unknown conversation is not an error.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope, input assistant.ResetInput) error {
	key, err := conversationKey(sc, input.ConversationID)
	if err != nil {
		return err
	}
	if uc.drop(key) {
		uc.l.Infof(ctx, "uc.Reset conversation=%s", key)
	}
	return nil
}

package http

import (
	"errors"
	"net/http"

	"deal-tracker/internal/assistant"
	pkgErrors "deal-tracker/pkg/errors"
)

var (
	errEmptyQuestion       = pkgErrors.NewHTTPError(http.StatusBadRequest, "question is empty")
	errMissingConversation = pkgErrors.NewHTTPError(http.StatusBadRequest, "X-Conversation-ID header is required")
	errAssistantFailed     = pkgErrors.NewHTTPError(http.StatusBadGateway, "assistant is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuestion):
		return errEmptyQuestion
	case errors.Is(err, assistant.ErrMissingConversation):
		return errMissingConversation
	case errors.Is(err, assistant.ErrAssistantFailed):
		return errAssistantFailed
	default:
		return err
	}
}

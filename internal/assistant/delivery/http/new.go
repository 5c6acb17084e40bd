package http

import (
	"deal-tracker/internal/assistant"
	"deal-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

package assistant

import (
	"context"

	"deal-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)
	Reset(ctx context.Context, sc model.Scope, input ResetInput) error
}

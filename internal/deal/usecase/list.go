package usecase

import (
	"context"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
)

// List returns deals newest first. Limit 0 returns every deal.
func (uc *implUseCase) List(ctx context.Context, input deal.ListDealsInput) (deal.ListDealsOutput, error) {
	deals, total, err := uc.repo.ListDeals(ctx, repo.ListDealsOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDeals: %v", err)
		return deal.ListDealsOutput{}, err
	}

	return deal.ListDealsOutput{
		Deals:  deals,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

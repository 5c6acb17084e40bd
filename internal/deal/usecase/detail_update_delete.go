package usecase

import (
	"context"
	"strings"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
)

// Detail retrieves a single Deal by its id. Returns ErrDealNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (deal.DetailDealOutput, error) {
	d, err := uc.repo.GetOneDeal(ctx, repo.GetOneDealOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneDeal: %v", err)
		return deal.DetailDealOutput{}, err
	}
	if d.ID == "" {
		return deal.DetailDealOutput{}, deal.ErrDealNotFound
	}
	return deal.DetailDealOutput{Deal: d}, nil
}

// Update applies a partial patch to an existing Deal. Returns ErrDealNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input deal.UpdateDealInput) (deal.UpdateDealOutput, error) {
	if input.Patch.Empty() {
		return deal.UpdateDealOutput{}, deal.ErrEmptyPatch
	}

	existing, err := uc.repo.GetOneDeal(ctx, repo.GetOneDealOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneDeal: %v", err)
		return deal.UpdateDealOutput{}, err
	}
	if existing.ID == "" {
		return deal.UpdateDealOutput{}, deal.ErrDealNotFound
	}

	patched := input.Patch.Apply(existing)
	patched.Address = strings.TrimSpace(patched.Address)
	if err := validateDeal(patched); err != nil {
		return deal.UpdateDealOutput{}, err
	}

	updated, err := uc.repo.UpdateDeal(ctx, repo.UpdateDealOptions{ID: input.ID, Deal: patched})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateDeal: %v", err)
		return deal.UpdateDealOutput{}, err
	}
	if updated.ID == "" {
		// deleted between read and write
		return deal.UpdateDealOutput{}, deal.ErrDealNotFound
	}

	if input.Patch.SaleOrRefinanceDate != nil && updated.SaleOrRefinanceDate != existing.SaleOrRefinanceDate {
		uc.scheduleReminder(ctx, updated)
	}
	return deal.UpdateDealOutput{Deal: updated}, nil
}

// Delete removes a Deal by id. Returns ErrDealNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.DeleteDeal(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteDeal: %v", err)
		return err
	}
	if !removed {
		return deal.ErrDealNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"regexp"
	"strings"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
)

// Create stores a new Deal. A deal whose address matches an existing one (case-insensitive)
// is rejected with ErrDuplicateAddress and the existing deal is returned in the output.
func (uc *implUseCase) Create(ctx context.Context, input deal.CreateDealInput) (deal.CreateDealOutput, error) {
	d := input.Deal
	d.Address = strings.TrimSpace(d.Address)
	if err := validateDeal(d); err != nil {
		return deal.CreateDealOutput{}, err
	}

	existing, err := uc.repo.GetOneDeal(ctx, repo.GetOneDealOptions{AddressMatch: addressPattern(d.Address)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneDeal address: %v", err)
		return deal.CreateDealOutput{}, err
	}
	if existing.ID != "" {
		return deal.CreateDealOutput{Existing: &existing}, deal.ErrDuplicateAddress
	}

	if d.ID == "" {
		d.ID = uc.newID()
	} else {
		taken, err := uc.repo.GetOneDeal(ctx, repo.GetOneDealOptions{ID: d.ID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneDeal id: %v", err)
			return deal.CreateDealOutput{}, err
		}
		if taken.ID != "" {
			return deal.CreateDealOutput{}, deal.ErrDuplicateID
		}
	}

	created, err := uc.repo.CreateDeal(ctx, repo.CreateDealOptions{Deal: d})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateDeal: %v", err)
		return deal.CreateDealOutput{}, err
	}

	uc.scheduleReminder(ctx, created)
	return deal.CreateDealOutput{Deal: created}, nil
}

// addressPattern matches any stored address containing address, ignoring case.
// The input is quoted so punctuation in addresses ("Apt. 4 (rear)") is taken literally.
func addressPattern(address string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(address))
}

package repository

import (
	"context"

	"deal-tracker/internal/deal"
)

// Repository is the composed interface for the deal data store.
type Repository interface {
	DealRepository
}

// DealRepository defines all data access methods for the Deal entity.
type DealRepository interface {
	CreateDeal(ctx context.Context, opt CreateDealOptions) (deal.Deal, error)
	GetOneDeal(ctx context.Context, opt GetOneDealOptions) (deal.Deal, error)
	ListDeals(ctx context.Context, opt ListDealsOptions) ([]deal.Deal, int, error)
	UpdateDeal(ctx context.Context, opt UpdateDealOptions) (deal.Deal, error)
	// DeleteDeal reports whether a row was removed.
	DeleteDeal(ctx context.Context, id string) (bool, error)
}

package deal

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Deal CRUD
	Create(ctx context.Context, input CreateDealInput) (CreateDealOutput, error)
	List(ctx context.Context, input ListDealsInput) (ListDealsOutput, error)
	Detail(ctx context.Context, id string) (DetailDealOutput, error)
	Update(ctx context.Context, input UpdateDealInput) (UpdateDealOutput, error)
	Delete(ctx context.Context, id string) error

	// Dashboard
	Stats(ctx context.Context) (StatsOutput, error)
}

package usecase

import (
	"context"
	"math"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
	"deal-tracker/pkg/currency"
)

// Stats computes the dashboard aggregates over every stored deal.
func (uc *implUseCase) Stats(ctx context.Context) (deal.StatsOutput, error) {
	deals, _, err := uc.repo.ListDeals(ctx, repo.ListDealsOptions{OrderBy: "created_at ASC"})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListDeals: %v", err)
		return deal.StatsOutput{}, err
	}
	return computeStats(deals), nil
}

func computeStats(deals []deal.Deal) deal.StatsOutput {
	out := deal.StatsOutput{Deals: make([]deal.DealStats, 0, len(deals))}

	var irrSum float64
	for _, d := range deals {
		s := deal.DealStats{
			ID:                  d.ID,
			Address:             d.Address,
			Name:                streetName(d.Address),
			EstimatedIRR:        currency.ParseOrZero(d.EstimatedIRR),
			RentIncreasePercent: currency.ParseOrZero(d.RentIncreasePercent),
			PurchasePrice:       currency.ParseOrZero(d.PurchasePrice),
		}
		if sale, ok := currency.Parse(d.SalePrice); ok {
			s.SalePrice, s.HasSale = sale, true
		}
		if days, ok := holdDays(d); ok {
			s.HoldDays, s.HasTimeline = days, true
		}
		out.Deals = append(out.Deals, s)

		out.Totals.Units += d.Units
		out.Totals.PurchasePrice += s.PurchasePrice
		out.Totals.EstimatedValue += currency.ParseOrZero(d.EstimatedValue)
		out.Totals.GrossProfit += currency.ParseOrZero(d.GrossProfit)
		irrSum += s.EstimatedIRR
	}

	out.Totals.Deals = len(deals)
	if len(deals) > 0 {
		out.Totals.AverageIRR = irrSum / float64(len(deals))
	}
	return out
}

// holdDays is the whole number of days between purchase and sale/refinance.
func holdDays(d deal.Deal) (int, bool) {
	if d.SaleOrRefinanceDate == "" {
		return 0, false
	}
	bought, ok := parseDate(d.PurchaseDate)
	if !ok {
		return 0, false
	}
	sold, ok := parseDate(d.SaleOrRefinanceDate)
	if !ok {
		return 0, false
	}
	return int(math.Round(sold.Sub(bought).Hours() / 24)), true
}

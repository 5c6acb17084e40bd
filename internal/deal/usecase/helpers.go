package usecase

import (
	"fmt"
	"strings"
	"time"

	"deal-tracker/internal/deal"
)

// dateLayouts are the purchase/sale date formats accepted from forms and imports.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	time.RFC3339,
}

// validateDeal enforces the fields a deal cannot be stored without.
func validateDeal(d deal.Deal) error {
	required := []struct {
		field string
		value string
	}{
		{"address", d.Address},
		{"purchase_price", d.PurchasePrice},
		{"down_payment_reserves", d.DownPaymentReserves},
		{"unstabilized_projected_income", d.UnstabilizedProjectedIncome},
		{"current_realized_income", d.CurrentRealizedIncome},
		{"rent_increase_percent", d.RentIncreasePercent},
		{"purchase_date", d.PurchaseDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", deal.ErrInvalidDeal, r.field)
		}
	}

	if d.Units < 1 {
		return fmt.Errorf("%w: units must be at least 1", deal.ErrInvalidDeal)
	}
	if d.NumberUnitsStabilized < 0 || d.NumberUnitsUnstabilized < 0 {
		return fmt.Errorf("%w: unit counts cannot be negative", deal.ErrInvalidDeal)
	}
	if _, ok := parseDate(d.PurchaseDate); !ok {
		return fmt.Errorf("%w: purchase_date %q is not a date", deal.ErrInvalidDeal, d.PurchaseDate)
	}
	if d.SaleOrRefinanceDate != "" {
		if _, ok := parseDate(d.SaleOrRefinanceDate); !ok {
			return fmt.Errorf("%w: sale_or_refinance_date %q is not a date", deal.ErrInvalidDeal, d.SaleOrRefinanceDate)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// streetName is the part of an address before the first comma.
func streetName(address string) string {
	name, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(name)
}

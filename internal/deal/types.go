package deal

import "time"

// --- Deal Domain Model ---

// Investor is a person with a stake in a deal.
type Investor struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// Deal is one tracked real-estate investment. Money and percentage fields are kept exactly as
// entered ("$1,250,000", "12.5%"); pkg/currency parses them when numbers are needed.
type Deal struct {
	ID                          string     `json:"id" yaml:"id"`
	Address                     string     `json:"address" yaml:"address"`
	Units                       int        `json:"units" yaml:"units"`
	NumberUnitsStabilized       int        `json:"number_units_stabilized" yaml:"number_units_stabilized"`
	NumberUnitsUnstabilized     int        `json:"number_units_unstabilized" yaml:"number_units_unstabilized"`
	PurchasePrice               string     `json:"purchase_price" yaml:"purchase_price"`
	DownPaymentReserves         string     `json:"down_payment_reserves" yaml:"down_payment_reserves"`
	UnstabilizedProjectedIncome string     `json:"unstabilized_projected_income" yaml:"unstabilized_projected_income"`
	CurrentRealizedIncome       string     `json:"current_realized_income" yaml:"current_realized_income"`
	SalePrice                   string     `json:"sale_price" yaml:"sale_price"`
	GrossProfit                 string     `json:"gross_profit" yaml:"gross_profit"`
	EstimatedValue              string     `json:"estimated_value" yaml:"estimated_value"`
	RentIncreasePercent         string     `json:"rent_increase_percent" yaml:"rent_increase_percent"`
	RefinanceValuation          string     `json:"refinance_valuation" yaml:"refinance_valuation"`
	PurchaseDate                string     `json:"purchase_date" yaml:"purchase_date"`
	SaleOrRefinanceDate         string     `json:"sale_or_refinance_date" yaml:"sale_or_refinance_date"`
	MajorCapitalEvent           bool       `json:"major_capital_event" yaml:"major_capital_event"`
	EstimatedIRR                string     `json:"estimated_irr" yaml:"estimated_irr"`
	Investors                   []Investor `json:"investors,omitempty" yaml:"investors,omitempty"`
	CreatedAt                   time.Time  `json:"created_at" yaml:"-"`
	UpdatedAt                   time.Time  `json:"updated_at" yaml:"-"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Address                     *string
	Units                       *int
	NumberUnitsStabilized       *int
	NumberUnitsUnstabilized     *int
	PurchasePrice               *string
	DownPaymentReserves         *string
	UnstabilizedProjectedIncome *string
	CurrentRealizedIncome       *string
	SalePrice                   *string
	GrossProfit                 *string
	EstimatedValue              *string
	RentIncreasePercent         *string
	RefinanceValuation          *string
	PurchaseDate                *string
	SaleOrRefinanceDate         *string
	MajorCapitalEvent           *bool
	EstimatedIRR                *string
	Investors                   *[]Investor
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Apply returns d with every non-nil field of p set.
func (p Patch) Apply(d Deal) Deal {
	setString(&d.Address, p.Address)
	setInt(&d.Units, p.Units)
	setInt(&d.NumberUnitsStabilized, p.NumberUnitsStabilized)
	setInt(&d.NumberUnitsUnstabilized, p.NumberUnitsUnstabilized)
	setString(&d.PurchasePrice, p.PurchasePrice)
	setString(&d.DownPaymentReserves, p.DownPaymentReserves)
	setString(&d.UnstabilizedProjectedIncome, p.UnstabilizedProjectedIncome)
	setString(&d.CurrentRealizedIncome, p.CurrentRealizedIncome)
	setString(&d.SalePrice, p.SalePrice)
	setString(&d.GrossProfit, p.GrossProfit)
	setString(&d.EstimatedValue, p.EstimatedValue)
	setString(&d.RentIncreasePercent, p.RentIncreasePercent)
	setString(&d.RefinanceValuation, p.RefinanceValuation)
	setString(&d.PurchaseDate, p.PurchaseDate)
	setString(&d.SaleOrRefinanceDate, p.SaleOrRefinanceDate)
	setString(&d.EstimatedIRR, p.EstimatedIRR)
	if p.MajorCapitalEvent != nil {
		d.MajorCapitalEvent = *p.MajorCapitalEvent
	}
	if p.Investors != nil {
		d.Investors = append([]Investor(nil), (*p.Investors)...)
	}
	return d
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// --- UseCase Inputs ---

type CreateDealInput struct {
	Deal Deal
}

type ListDealsInput struct {
	Limit  int
	Offset int
}

type UpdateDealInput struct {
	ID    string
	Patch Patch
}

// --- UseCase Outputs ---

// CreateDealOutput carries the new deal, or on ErrDuplicateAddress the deal already stored
// under a matching address.
type CreateDealOutput struct {
	Deal     Deal
	Existing *Deal
}

type ListDealsOutput struct {
	Deals  []Deal
	Total  int
	Limit  int
	Offset int
}

type DetailDealOutput struct {
	Deal Deal
}

type UpdateDealOutput struct {
	Deal Deal
}

// --- Dashboard aggregates ---

// DealStats is the per-deal slice of the dashboard charts.
type DealStats struct {
	ID      string
	Address string
	// Name is the street part of the address (text before the first comma).
	Name                string
	EstimatedIRR        float64
	RentIncreasePercent float64
	PurchasePrice       float64
	SalePrice           float64
	HasSale             bool
	// HoldDays is the purchase to sale/refinance span; valid only when HasTimeline.
	HoldDays    int
	HasTimeline bool
}

// PortfolioTotals sums the whole portfolio.
type PortfolioTotals struct {
	Deals          int
	Units          int
	PurchasePrice  float64
	EstimatedValue float64
	GrossProfit    float64
	AverageIRR     float64
}

type StatsOutput struct {
	Deals  []DealStats
	Totals PortfolioTotals
}

package http

import (
	"time"

	"deal-tracker/internal/deal"
	"deal-tracker/pkg/currency"
)

// --- Request DTOs ---

type investorReq struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

func toInvestors(in []investorReq) []deal.Investor {
	if in == nil {
		return nil
	}
	out := make([]deal.Investor, len(in))
	for i, inv := range in {
		out[i] = deal.Investor{Name: inv.Name, Email: inv.Email, Phone: inv.Phone}
	}
	return out
}

type createReq struct {
	ID                          string        `json:"id"`
	Address                     string        `json:"address"                       binding:"required,max=500"`
	Units                       int           `json:"units"                         binding:"required,min=1"`
	NumberUnitsStabilized       int           `json:"number_units_stabilized"       binding:"min=0"`
	NumberUnitsUnstabilized     int           `json:"number_units_unstabilized"     binding:"min=0"`
	PurchasePrice               string        `json:"purchase_price"                binding:"required"`
	DownPaymentReserves         string        `json:"down_payment_reserves"         binding:"required"`
	UnstabilizedProjectedIncome string        `json:"unstabilized_projected_income" binding:"required"`
	CurrentRealizedIncome       string        `json:"current_realized_income"       binding:"required"`
	SalePrice                   string        `json:"sale_price"`
	GrossProfit                 string        `json:"gross_profit"`
	EstimatedValue              string        `json:"estimated_value"`
	RentIncreasePercent         string        `json:"rent_increase_percent"         binding:"required"`
	RefinanceValuation          string        `json:"refinance_valuation"`
	PurchaseDate                string        `json:"purchase_date"                 binding:"required"`
	SaleOrRefinanceDate         string        `json:"sale_or_refinance_date"`
	MajorCapitalEvent           bool          `json:"major_capital_event"`
	EstimatedIRR                string        `json:"estimated_irr"`
	Investors                   []investorReq `json:"investors"                     binding:"dive"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() deal.CreateDealInput {
	return deal.CreateDealInput{Deal: deal.Deal{
		ID:                          r.ID,
		Address:                     r.Address,
		Units:                       r.Units,
		NumberUnitsStabilized:       r.NumberUnitsStabilized,
		NumberUnitsUnstabilized:     r.NumberUnitsUnstabilized,
		PurchasePrice:               r.PurchasePrice,
		DownPaymentReserves:         r.DownPaymentReserves,
		UnstabilizedProjectedIncome: r.UnstabilizedProjectedIncome,
		CurrentRealizedIncome:       r.CurrentRealizedIncome,
		SalePrice:                   r.SalePrice,
		GrossProfit:                 r.GrossProfit,
		EstimatedValue:              r.EstimatedValue,
		RentIncreasePercent:         r.RentIncreasePercent,
		RefinanceValuation:          r.RefinanceValuation,
		PurchaseDate:                r.PurchaseDate,
		SaleOrRefinanceDate:         r.SaleOrRefinanceDate,
		MajorCapitalEvent:           r.MajorCapitalEvent,
		EstimatedIRR:                r.EstimatedIRR,
		Investors:                   toInvestors(r.Investors),
	}}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) validate() error { return nil }

// toInput keeps limit 0 (the dashboard loads every deal) and caps explicit pages at 500.
func (r listReq) toInput() deal.ListDealsInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > 500 {
		limit = 500
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return deal.ListDealsInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type patchFields struct {
	Address                     *string        `json:"address"                       binding:"omitempty,max=500"`
	Units                       *int           `json:"units"                         binding:"omitempty,min=1"`
	NumberUnitsStabilized       *int           `json:"number_units_stabilized"       binding:"omitempty,min=0"`
	NumberUnitsUnstabilized     *int           `json:"number_units_unstabilized"     binding:"omitempty,min=0"`
	PurchasePrice               *string        `json:"purchase_price"`
	DownPaymentReserves         *string        `json:"down_payment_reserves"`
	UnstabilizedProjectedIncome *string        `json:"unstabilized_projected_income"`
	CurrentRealizedIncome       *string        `json:"current_realized_income"`
	SalePrice                   *string        `json:"sale_price"`
	GrossProfit                 *string        `json:"gross_profit"`
	EstimatedValue              *string        `json:"estimated_value"`
	RentIncreasePercent         *string        `json:"rent_increase_percent"`
	RefinanceValuation          *string        `json:"refinance_valuation"`
	PurchaseDate                *string        `json:"purchase_date"`
	SaleOrRefinanceDate         *string        `json:"sale_or_refinance_date"`
	MajorCapitalEvent           *bool          `json:"major_capital_event"`
	EstimatedIRR                *string        `json:"estimated_irr"`
	Investors                   *[]investorReq `json:"investors"`
}

// updateReq accepts the fields either at the top level or wrapped as {"updateData": {...}}.
type updateReq struct {
	ID string `json:"-"` // populated from URI param
	patchFields
	UpdateData *patchFields `json:"updateData"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() deal.UpdateDealInput {
	f := r.patchFields
	if r.UpdateData != nil {
		f = *r.UpdateData
	}

	p := deal.Patch{
		Address:                     f.Address,
		Units:                       f.Units,
		NumberUnitsStabilized:       f.NumberUnitsStabilized,
		NumberUnitsUnstabilized:     f.NumberUnitsUnstabilized,
		PurchasePrice:               f.PurchasePrice,
		DownPaymentReserves:         f.DownPaymentReserves,
		UnstabilizedProjectedIncome: f.UnstabilizedProjectedIncome,
		CurrentRealizedIncome:       f.CurrentRealizedIncome,
		SalePrice:                   f.SalePrice,
		GrossProfit:                 f.GrossProfit,
		EstimatedValue:              f.EstimatedValue,
		RentIncreasePercent:         f.RentIncreasePercent,
		RefinanceValuation:          f.RefinanceValuation,
		PurchaseDate:                f.PurchaseDate,
		SaleOrRefinanceDate:         f.SaleOrRefinanceDate,
		MajorCapitalEvent:           f.MajorCapitalEvent,
		EstimatedIRR:                f.EstimatedIRR,
	}
	if f.Investors != nil {
		inv := toInvestors(*f.Investors)
		if inv == nil {
			inv = []deal.Investor{}
		}
		p.Investors = &inv
	}
	return deal.UpdateDealInput{ID: r.ID, Patch: p}
}

// --- Response DTOs ---

type dealResp struct {
	ID                          string          `json:"id"`
	Address                     string          `json:"address"`
	Units                       int             `json:"units"`
	NumberUnitsStabilized       int             `json:"number_units_stabilized"`
	NumberUnitsUnstabilized     int             `json:"number_units_unstabilized"`
	PurchasePrice               string          `json:"purchase_price"`
	DownPaymentReserves         string          `json:"down_payment_reserves"`
	UnstabilizedProjectedIncome string          `json:"unstabilized_projected_income"`
	CurrentRealizedIncome       string          `json:"current_realized_income"`
	SalePrice                   string          `json:"sale_price"`
	GrossProfit                 string          `json:"gross_profit"`
	EstimatedValue              string          `json:"estimated_value"`
	RentIncreasePercent         string          `json:"rent_increase_percent"`
	RefinanceValuation          string          `json:"refinance_valuation"`
	PurchaseDate                string          `json:"purchase_date"`
	SaleOrRefinanceDate         string          `json:"sale_or_refinance_date"`
	MajorCapitalEvent           bool            `json:"major_capital_event"`
	EstimatedIRR                string          `json:"estimated_irr"`
	Investors                   []deal.Investor `json:"investors"`
	CreatedAt                   time.Time       `json:"created_at"`
	UpdatedAt                   time.Time       `json:"updated_at"`
}

func newDealResp(d deal.Deal) dealResp {
	investors := d.Investors
	if investors == nil {
		investors = []deal.Investor{}
	}
	return dealResp{
		ID:                          d.ID,
		Address:                     d.Address,
		Units:                       d.Units,
		NumberUnitsStabilized:       d.NumberUnitsStabilized,
		NumberUnitsUnstabilized:     d.NumberUnitsUnstabilized,
		PurchasePrice:               d.PurchasePrice,
		DownPaymentReserves:         d.DownPaymentReserves,
		UnstabilizedProjectedIncome: d.UnstabilizedProjectedIncome,
		CurrentRealizedIncome:       d.CurrentRealizedIncome,
		SalePrice:                   d.SalePrice,
		GrossProfit:                 d.GrossProfit,
		EstimatedValue:              d.EstimatedValue,
		RentIncreasePercent:         d.RentIncreasePercent,
		RefinanceValuation:          d.RefinanceValuation,
		PurchaseDate:                d.PurchaseDate,
		SaleOrRefinanceDate:         d.SaleOrRefinanceDate,
		MajorCapitalEvent:           d.MajorCapitalEvent,
		EstimatedIRR:                d.EstimatedIRR,
		Investors:                   investors,
		CreatedAt:                   d.CreatedAt,
		UpdatedAt:                   d.UpdatedAt,
	}
}

type createResp struct {
	NewProperty dealResp `json:"new_property"`
}

func (h *handler) newCreateResp(out deal.CreateDealOutput) createResp {
	return createResp{NewProperty: newDealResp(out.Deal)}
}

type duplicateResp struct {
	ExistingProperty dealResp `json:"existing_property"`
}

type listResp struct {
	Properties []dealResp `json:"properties"`
	Total      int        `json:"total"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

func (h *handler) newListResp(out deal.ListDealsOutput) listResp {
	items := make([]dealResp, len(out.Deals))
	for i, d := range out.Deals {
		items[i] = newDealResp(d)
	}
	return listResp{
		Properties: items,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}

type updateResp struct {
	UpdatedRecord dealResp `json:"updated_record"`
}

func (h *handler) newUpdateResp(out deal.UpdateDealOutput) updateResp {
	return updateResp{UpdatedRecord: newDealResp(out.Deal)}
}

type dealStatsResp struct {
	ID                  string   `json:"id"`
	Address             string   `json:"address"`
	Name                string   `json:"name"`
	EstimatedIRR        float64  `json:"estimated_irr"`
	RentIncreasePercent float64  `json:"rent_increase_percent"`
	PurchasePrice       float64  `json:"purchase_price"`
	SalePrice           *float64 `json:"sale_price"`
	HoldDays            *int     `json:"hold_days"`
}

type totalsResp struct {
	Deals          int     `json:"deals"`
	Units          int     `json:"units"`
	PurchasePrice  float64 `json:"purchase_price"`
	EstimatedValue float64 `json:"estimated_value"`
	GrossProfit    float64 `json:"gross_profit"`
	AverageIRR     float64 `json:"average_irr"`

	// Display strings for the money totals, e.g. "$1,250,000.00".
	PurchasePriceText  string `json:"purchase_price_text"`
	EstimatedValueText string `json:"estimated_value_text"`
	GrossProfitText    string `json:"gross_profit_text"`
}

type statsResp struct {
	Deals  []dealStatsResp `json:"deals"`
	Totals totalsResp      `json:"totals"`
}

func (h *handler) newStatsResp(out deal.StatsOutput) statsResp {
	items := make([]dealStatsResp, len(out.Deals))
	for i, s := range out.Deals {
		item := dealStatsResp{
			ID:                  s.ID,
			Address:             s.Address,
			Name:                s.Name,
			EstimatedIRR:        s.EstimatedIRR,
			RentIncreasePercent: s.RentIncreasePercent,
			PurchasePrice:       s.PurchasePrice,
		}
		if s.HasSale {
			sale := s.SalePrice
			item.SalePrice = &sale
		}
		if s.HasTimeline {
			days := s.HoldDays
			item.HoldDays = &days
		}
		items[i] = item
	}
	t := out.Totals
	return statsResp{
		Deals: items,
		Totals: totalsResp{
			Deals:          t.Deals,
			Units:          t.Units,
			PurchasePrice:  t.PurchasePrice,
			EstimatedValue: t.EstimatedValue,
			GrossProfit:    t.GrossProfit,
			AverageIRR:     t.AverageIRR,

			PurchasePriceText:  currency.Format(t.PurchasePrice),
			EstimatedValueText: currency.Format(t.EstimatedValue),
			GrossProfitText:    currency.Format(t.GrossProfit),
		},
	}
}

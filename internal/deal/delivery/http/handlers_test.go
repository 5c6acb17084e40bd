package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/deal"
	repo "deal-tracker/internal/deal/repository"
	"deal-tracker/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	createOut   deal.CreateDealOutput
	createErr   error
	createInput deal.CreateDealInput
	updateInput deal.UpdateDealInput
	listInput   deal.ListDealsInput
	detailErr   error
	deleteErr   error
	stats       deal.StatsOutput
}

func (m *mockUseCase) Create(ctx context.Context, input deal.CreateDealInput) (deal.CreateDealOutput, error) {
	m.createInput = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, input deal.ListDealsInput) (deal.ListDealsOutput, error) {
	m.listInput = input
	return deal.ListDealsOutput{Deals: []deal.Deal{{ID: "d-1", Address: "12 Main St"}}, Total: 1, Limit: input.Limit}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (deal.DetailDealOutput, error) {
	if m.detailErr != nil {
		return deal.DetailDealOutput{}, m.detailErr
	}
	return deal.DetailDealOutput{Deal: deal.Deal{ID: id, Address: "12 Main St"}}, nil
}

func (m *mockUseCase) Update(ctx context.Context, input deal.UpdateDealInput) (deal.UpdateDealOutput, error) {
	m.updateInput = input
	return deal.UpdateDealOutput{Deal: deal.Deal{ID: input.ID}}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockUseCase) Stats(ctx context.Context) (deal.StatsOutput, error) {
	return m.stats, nil
}

func newTestRouter(uc deal.UseCase) *gin.Engine {
	h := New(log.NewNop(), uc)
	r := gin.New()
	g := r.Group("/api/v1/deals")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/stats", h.Stats)
	g.GET("/:id", h.Detail)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

const validBody = `{
	"address": "12 Main St",
	"units": 4,
	"purchase_price": "$500,000",
	"down_payment_reserves": "$100,000",
	"unstabilized_projected_income": "$4,000",
	"current_realized_income": "$3,500",
	"rent_increase_percent": "10%",
	"purchase_date": "01/15/2024",
	"major_capital_event": false,
	"investors": [{"name": "Ada", "email": "ada@example.com", "phone": "555"}]
}`

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{createOut: deal.CreateDealOutput{Deal: deal.Deal{ID: "new", Address: "12 Main St"}}}
		w := serve(newTestRouter(uc), http.MethodPost, "/api/v1/deals", validBody)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.createInput.Deal.Units != 4 || len(uc.createInput.Deal.Investors) != 1 {
			t.Errorf("input not mapped: %+v", uc.createInput.Deal)
		}
		if !strings.Contains(string(decode(t, w).Data), `"new_property"`) {
			t.Errorf("expected new_property in %s", w.Body.String())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(newTestRouter(uc), http.MethodPost, "/api/v1/deals", `{"address":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate address returns existing", func(t *testing.T) {
		existing := deal.Deal{ID: "old", Address: "12 Main St"}
		uc := &mockUseCase{
			createOut: deal.CreateDealOutput{Existing: &existing},
			createErr: deal.ErrDuplicateAddress,
		}
		w := serve(newTestRouter(uc), http.MethodPost, "/api/v1/deals", validBody)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var data struct {
			ExistingProperty struct {
				ID string `json:"id"`
			} `json:"existing_property"`
		}
		if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.ExistingProperty.ID != "old" {
			t.Errorf("expected existing id old, got %q", data.ExistingProperty.ID)
		}
	})

	t.Run("domain validation", func(t *testing.T) {
		uc := &mockUseCase{createErr: deal.ErrInvalidDeal}
		w := serve(newTestRouter(uc), http.MethodPost, "/api/v1/deals", validBody)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := &mockUseCase{createErr: repo.ErrFailedToInsert}
		w := serve(newTestRouter(uc), http.MethodPost, "/api/v1/deals", validBody)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(newTestRouter(uc), http.MethodGet, "/api/v1/deals?limit=9999&offset=-3", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listInput.Limit != 500 || uc.listInput.Offset != 0 {
		t.Errorf("expected clamped pagination, got %+v", uc.listInput)
	}

	var data listResp
	if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Properties) != 1 || data.Properties[0].ID != "d-1" {
		t.Errorf("unexpected list: %+v", data)
	}
	if data.Properties[0].Investors == nil {
		t.Error("investors should render as [] not null")
	}
}

func TestDetail(t *testing.T) {
	w := serve(newTestRouter(&mockUseCase{}), http.MethodGet, "/api/v1/deals/d-9", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"d-9"`) {
		t.Errorf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	w = serve(newTestRouter(&mockUseCase{detailErr: deal.ErrDealNotFound}), http.MethodGet, "/api/v1/deals/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("top-level fields", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(newTestRouter(uc), http.MethodPatch, "/api/v1/deals/d-1", `{"sale_price":"$700,000","units":6}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		p := uc.updateInput.Patch
		if uc.updateInput.ID != "d-1" || p.SalePrice == nil || *p.SalePrice != "$700,000" || p.Units == nil || *p.Units != 6 {
			t.Errorf("unexpected patch: %+v", uc.updateInput)
		}
		if p.Address != nil || p.Investors != nil {
			t.Errorf("absent fields must stay nil: %+v", p)
		}
	})

	t.Run("wrapped in updateData", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(newTestRouter(uc), http.MethodPatch, "/api/v1/deals/d-1", `{"updateData":{"estimated_irr":"15%","investors":[]}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		p := uc.updateInput.Patch
		if p.EstimatedIRR == nil || *p.EstimatedIRR != "15%" {
			t.Errorf("expected estimated_irr patch, got %+v", p)
		}
		if p.Investors == nil || len(*p.Investors) != 0 {
			t.Errorf("expected investors cleared, got %+v", p.Investors)
		}
	})

	t.Run("invalid units", func(t *testing.T) {
		w := serve(newTestRouter(&mockUseCase{}), http.MethodPatch, "/api/v1/deals/d-1", `{"units":0}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestDelete(t *testing.T) {
	w := serve(newTestRouter(&mockUseCase{}), http.MethodDelete, "/api/v1/deals/d-1", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w = serve(newTestRouter(&mockUseCase{deleteErr: deal.ErrDealNotFound}), http.MethodDelete, "/api/v1/deals/d-1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStats(t *testing.T) {
	uc := &mockUseCase{stats: deal.StatsOutput{
		Deals: []deal.DealStats{
			{ID: "a", Name: "12 Main St", EstimatedIRR: 20, HasSale: true, SalePrice: 1, HasTimeline: true, HoldDays: 30},
			{ID: "b", Name: "99 Elm"},
		},
		Totals: deal.PortfolioTotals{Deals: 2, AverageIRR: 10, PurchasePrice: 1250000, GrossProfit: -2500.5},
	}}
	w := serve(newTestRouter(uc), http.MethodGet, "/api/v1/deals/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var data statsResp
	if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Totals.AverageIRR != 10 || len(data.Deals) != 2 {
		t.Errorf("unexpected stats: %+v", data)
	}
	if data.Totals.PurchasePriceText != "$1,250,000.00" || data.Totals.EstimatedValueText != "$0.00" || data.Totals.GrossProfitText != "-$2,500.50" {
		t.Errorf("unexpected formatted totals: %+v", data.Totals)
	}
	if data.Deals[0].HoldDays == nil || *data.Deals[0].HoldDays != 30 {
		t.Errorf("expected hold days 30, got %v", data.Deals[0].HoldDays)
	}
	if data.Deals[1].SalePrice != nil || data.Deals[1].HoldDays != nil {
		t.Errorf("missing sale/timeline should be null: %+v", data.Deals[1])
	}
}

package usecase

import (
	"context"
	"encoding/json"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/deal"
)

const (
	dashboardContext = " - We are discussing this property (in JSON): "
	portfolioContext = "- Parse this JSON object which contains all property data (reference it by address): "
)

// buildPrompt joins the question with its JSON context. The dashboard form is used only when the
// caller supplied the property itself.
func buildPrompt(input assistant.AskInput, supporting string) string {
	if input.IsDashboard && input.Supporting != "" {
		return input.Data + dashboardContext + supporting
	}
	return input.Data + portfolioContext + supporting
}

// portfolioJSON renders every stored deal as the JSON context.
func (uc *implUseCase) portfolioJSON(ctx context.Context) (string, error) {
	out, err := uc.deals.List(ctx, deal.ListDealsInput{})
	if err != nil {
		return "", err
	}
	deals := out.Deals
	if deals == nil {
		deals = []deal.Deal{}
	}
	b, err := json.Marshal(deals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

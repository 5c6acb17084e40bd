package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/model"
	"deal-tracker/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	scope model.Scope
	input assistant.AskInput
	reset assistant.ResetInput
	err   error
}

func (m *mockUseCase) Ask(ctx context.Context, sc model.Scope, input assistant.AskInput) (assistant.AskOutput, error) {
	m.scope = sc
	m.input = input
	if m.err != nil {
		return assistant.AskOutput{}, m.err
	}
	return assistant.AskOutput{Result: "Buy it."}, nil
}

func (m *mockUseCase) Reset(ctx context.Context, sc model.Scope, input assistant.ResetInput) error {
	m.scope = sc
	m.reset = input
	return m.err
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	h := New(log.NewNop(), uc)
	r := gin.New()
	g := r.Group("/api/v1/ai", func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "alice"}))
		c.Next()
	})
	g.POST("", h.Ask)
	g.DELETE("/session", h.Reset)
	return r
}

func TestAsk(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai",
		strings.NewReader(`{"data":"IRR?","isDashBoard":true,"supporting":"{\"address\":\"12 Main St\"}"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ConversationHeader, "tab-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var env struct {
		Data askResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.Result != "Buy it." {
		t.Errorf("result = %q", env.Data.Result)
	}
	if uc.scope.UserID != "alice" {
		t.Errorf("scope = %+v", uc.scope)
	}
	want := assistant.AskInput{Data: "IRR?", IsDashboard: true, Supporting: `{"address":"12 Main St"}`, ConversationID: "tab-1"}
	if uc.input != want {
		t.Errorf("input = %+v", uc.input)
	}
}

func TestAskErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{assistant.ErrEmptyQuestion, http.StatusBadRequest},
		{assistant.ErrMissingConversation, http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", assistant.ErrAssistantFailed), http.StatusBadGateway},
		{fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		r := newTestRouter(&mockUseCase{err: tt.err})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai", strings.NewReader(`{"data":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.want)
		}
	}

	r := newTestRouter(&mockUseCase{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", w.Code)
	}
}

func TestReset(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/ai/session", nil)
	req.Header.Set(ConversationHeader, "tab-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.reset.ConversationID != "tab-1" {
		t.Errorf("reset input = %+v", uc.reset)
	}
}

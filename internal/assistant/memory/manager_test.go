package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"deal-tracker/pkg/openai"
)

// scriptedCompleter records every request and answers from a script.
type scriptedCompleter struct {
	requests []*openai.ChatCompletionRequest
	// respond returns the reply for the n-th call (0-based).
	respond func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

func (c *scriptedCompleter) CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	n := len(c.requests)
	c.requests = append(c.requests, req)
	return c.respond(n, req)
}

func reply(text string) *openai.ChatCompletionResponse {
	return &openai.ChatCompletionResponse{
		Choices: []openai.Choice{{Message: openai.ChatMessage{Role: openai.RoleAssistant, Content: text}}},
	}
}

// echoCompleter answers the summarization call with "summary #n" and the answer call with "answer #n".
func echoCompleter() *scriptedCompleter {
	return &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			if isSummaryRequest(req) {
				return reply(fmt.Sprintf("summary #%d", n)), nil
			}
			return reply(fmt.Sprintf("answer #%d", n)), nil
		},
	}
}

func isSummaryRequest(req *openai.ChatCompletionRequest) bool {
	return len(req.Messages) == 2 && req.Messages[0].Content == summarySystemPrompt
}

func TestNew_Defaults(t *testing.T) {
	m := New(echoCompleter(), Config{})

	if m.Model() != DefaultModel {
		t.Errorf("expected model %q, got %q", DefaultModel, m.Model())
	}
	if m.MaxSlots() != DefaultMaxSlots {
		t.Errorf("expected %d slots, got %d", DefaultMaxSlots, m.MaxSlots())
	}
	if m.Summary() != "" {
		t.Errorf("expected empty summary before first ask, got %q", m.Summary())
	}

	h := m.History()
	if len(h) != 1 || h[0].Role != RoleSystem || h[0].Content != DefaultPersona {
		t.Errorf("expected history seeded with persona system message, got %+v", h)
	}
}

func TestRole(t *testing.T) {
	cases := []struct {
		role  Role
		wire  string
		label string
	}{
		{RoleUser, "user", "User"},
		{RoleAssistant, "assistant", "AI"},
		{RoleSystem, "system", "AI"},
	}
	for _, tc := range cases {
		if tc.role.String() != tc.wire {
			t.Errorf("String(%d) = %q, want %q", tc.role, tc.role.String(), tc.wire)
		}
		if tc.role.Label() != tc.label {
			t.Errorf("Label(%d) = %q, want %q", tc.role, tc.role.Label(), tc.label)
		}
	}
}

// Scenario A: small window, one question, two calls in order.
func TestAsk_ScenarioA(t *testing.T) {
	c := echoCompleter()
	m := New(c, Config{MaxSlots: 3})

	got, err := m.Ask(context.Background(), "What is the IRR of deal X?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer #1" {
		t.Errorf("expected reply from second call, got %q", got)
	}

	h := m.History()
	if len(h) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(h))
	}
	if h[0].Role != RoleSystem || h[1] != UserMessage("What is the IRR of deal X?") {
		t.Errorf("unexpected history: %+v", h)
	}

	if len(c.requests) != 2 {
		t.Fatalf("expected 2 completion calls, got %d", len(c.requests))
	}
	if !isSummaryRequest(c.requests[0]) {
		t.Error("first call should be the summarization request")
	}
	if isSummaryRequest(c.requests[1]) {
		t.Error("second call should be the answer request")
	}
}

func TestAsk_SummaryRequestShape(t *testing.T) {
	c := echoCompleter()
	m := New(c, Config{Model: "gpt-4o-mini"})

	if _, err := m.Ask(context.Background(), "Deal at 12 Main St closed at $1,200,000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := c.requests[0]
	if req.Model != "gpt-4o-mini" {
		t.Errorf("expected configured model, got %q", req.Model)
	}
	if req.Temperature == nil || *req.Temperature != SummaryTemperature {
		t.Errorf("expected temperature %v, got %v", SummaryTemperature, req.Temperature)
	}
	if req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("unexpected roles: %s, %s", req.Messages[0].Role, req.Messages[1].Role)
	}

	prompt := req.Messages[1].Content
	if !strings.HasPrefix(prompt, summaryInstruction) {
		t.Error("summary prompt should start with the instruction")
	}
	if !strings.Contains(prompt, "AI: "+DefaultPersona+"\n") {
		t.Error("summary prompt should render the system message with the AI label")
	}
	if !strings.Contains(prompt, "User: Deal at 12 Main St closed at $1,200,000\n") {
		t.Error("summary prompt should render the user message with the User label")
	}
	if !strings.HasSuffix(prompt, "\nDeal at 12 Main St closed at $1,200,000") {
		t.Error("summary prompt should end with the utterance verbatim")
	}
}

func TestAsk_AnswerRequestCarriesSummary(t *testing.T) {
	c := echoCompleter()
	m := New(c, Config{Model: "gpt-4"})

	for i := 0; i < 3; i++ {
		if _, err := m.Ask(context.Background(), fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summaryCall := c.requests[len(c.requests)-2]
		answerCall := c.requests[len(c.requests)-1]

		if !isSummaryRequest(summaryCall) {
			t.Fatalf("call %d should be a summarization request", len(c.requests)-2)
		}
		if len(answerCall.Messages) != 3 {
			t.Fatalf("answer request should have 3 messages, got %d", len(answerCall.Messages))
		}
		if answerCall.Messages[0].Role != "system" || answerCall.Messages[0].Content != answerSystemPrompt {
			t.Errorf("unexpected answer system message: %+v", answerCall.Messages[0])
		}
		if answerCall.Messages[1].Content != m.Summary() {
			t.Errorf("answer message[1] = %q, want summary %q", answerCall.Messages[1].Content, m.Summary())
		}
		if answerCall.Messages[1].Content != fmt.Sprintf("summary #%d", len(c.requests)-2) {
			t.Errorf("answer message[1] should be the summary of the same ask, got %q", answerCall.Messages[1].Content)
		}
		if answerCall.Messages[2] != (openai.ChatMessage{Role: "user", Content: fmt.Sprintf("question %d", i)}) {
			t.Errorf("answer message[2] should be the raw utterance, got %+v", answerCall.Messages[2])
		}
		if answerCall.Temperature != nil {
			t.Errorf("answer request should not set temperature, got %v", *answerCall.Temperature)
		}
		if answerCall.Model != "gpt-4" {
			t.Errorf("answer request should use configured model, got %q", answerCall.Model)
		}
	}
}

func TestAsk_SummaryIsReplaced(t *testing.T) {
	c := &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			switch n {
			case 0:
				return reply("FIRST-SUMMARY"), nil
			case 2:
				return reply("SECOND-SUMMARY"), nil
			default:
				return reply("ok"), nil
			}
		},
	}
	m := New(c, Config{})

	m.Ask(context.Background(), "one")
	if m.Summary() != "FIRST-SUMMARY" {
		t.Fatalf("expected first summary, got %q", m.Summary())
	}
	m.Ask(context.Background(), "two")
	if m.Summary() != "SECOND-SUMMARY" {
		t.Errorf("expected summary to be replaced, got %q", m.Summary())
	}
	if strings.Contains(c.requests[3].Messages[1].Content, "FIRST-SUMMARY") {
		t.Error("second answer request should not carry the first summary")
	}
}

// Scenario B: FIFO eviction under the default window.
func TestAsk_ScenarioB_BoundedFIFO(t *testing.T) {
	c := echoCompleter()
	m := New(c, Config{MaxSlots: 22})

	for i := 1; i <= 25; i++ {
		if _, err := m.Ask(context.Background(), fmt.Sprintf("q%d", i)); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}

		h := m.History()
		if len(h) > 22 {
			t.Fatalf("after ask %d history has %d entries", i, len(h))
		}
		if h[len(h)-1].Content != fmt.Sprintf("q%d", i) {
			t.Fatalf("after ask %d newest entry is %q", i, h[len(h)-1].Content)
		}
	}

	h := m.History()
	if len(h) != 22 {
		t.Fatalf("expected full window of 22, got %d", len(h))
	}
	// 1 system + 25 user = 26 entries seen; the 4 oldest (system, q1..q3) are gone.
	if h[0].Content != "q4" {
		t.Errorf("expected oldest surviving entry q4, got %q", h[0].Content)
	}
	for _, msg := range h {
		if msg.Role == RoleSystem {
			t.Error("seeded system message should have been evicted")
		}
	}

	// The rendered window of the last summarization call matches the window.
	last := c.requests[len(c.requests)-2].Messages[1].Content
	if strings.Contains(last, "User: q3\n") || !strings.Contains(last, "User: q4\n") {
		t.Error("summary prompt should only render the current window")
	}
}

// Scenario C: no choices on the answer call.
func TestAsk_ScenarioC_EmptyAnswer(t *testing.T) {
	c := &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			if n == 0 {
				return reply("a summary"), nil
			}
			return &openai.ChatCompletionResponse{Choices: []openai.Choice{}}, nil
		},
	}
	m := New(c, Config{})

	got, err := m.Ask(context.Background(), "anything?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty reply, got %q", got)
	}
}

func TestAsk_EmptySummaryBecomesEmptyString(t *testing.T) {
	c := &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			switch n {
			case 0:
				return reply("earlier summary"), nil
			case 2:
				return &openai.ChatCompletionResponse{}, nil
			default:
				return reply("fine"), nil
			}
		},
	}
	m := New(c, Config{})

	m.Ask(context.Background(), "first")
	if _, err := m.Ask(context.Background(), "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Summary() != "" {
		t.Errorf("expected summary replaced by empty string, got %q", m.Summary())
	}
	if c.requests[3].Messages[1].Content != "" {
		t.Errorf("answer should carry the empty summary, got %q", c.requests[3].Messages[1].Content)
	}
}

// Scenario D: the summarization call fails.
func TestAsk_ScenarioD_SummaryFailurePropagates(t *testing.T) {
	upstream := errors.New("connection reset")
	c := &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			return nil, upstream
		},
	}
	m := New(c, Config{})

	_, err := m.Ask(context.Background(), "will this fail?")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(c.requests) != 1 {
		t.Errorf("answer call must not run after a failed summary, got %d calls", len(c.requests))
	}

	h := m.History()
	if h[len(h)-1] != UserMessage("will this fail?") {
		t.Errorf("user message should stay in history, got %+v", h)
	}
}

func TestAsk_AnswerFailurePropagates(t *testing.T) {
	upstream := errors.New("401 unauthorized")
	c := &scriptedCompleter{
		respond: func(n int, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
			if n == 0 {
				return reply("kept summary"), nil
			}
			return nil, upstream
		},
	}
	m := New(c, Config{})

	if _, err := m.Ask(context.Background(), "q"); !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if m.Summary() != "kept summary" {
		t.Errorf("summary from the first call should remain, got %q", m.Summary())
	}
}

func TestAsk_EmptyUtteranceAccepted(t *testing.T) {
	m := New(echoCompleter(), Config{})
	if _, err := m.Ask(context.Background(), ""); err != nil {
		t.Fatalf("empty utterance should not be rejected here: %v", err)
	}
	if len(m.History()) != 2 {
		t.Errorf("expected empty utterance to be recorded, got %d entries", len(m.History()))
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	m := New(echoCompleter(), Config{})
	h := m.History()
	h[0] = UserMessage("tampered")
	if m.History()[0].Role != RoleSystem {
		t.Error("mutating the returned slice must not affect the manager")
	}
}

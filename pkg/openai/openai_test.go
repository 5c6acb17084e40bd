package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deal-tracker/pkg/openai"
)

func TestClient_CreateChatCompletion(t *testing.T) {
	var gotReq openai.ChatCompletionRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if gotReq.Messages[0].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
			return
		}
		if gotReq.Messages[0].Content == "no_choices" {
			w.Write([]byte(`{"id":"x","choices":[]}`))
			return
		}
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "mocked reply"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), &openai.ChatCompletionRequest{
			Messages:    []openai.ChatMessage{{Role: openai.RoleUser, Content: "hello"}},
			Temperature: openai.Float64(0.2),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.FirstContent() != "mocked reply" {
			t.Errorf("expected 'mocked reply', got %q", resp.FirstContent())
		}
		if gotReq.Model != openai.DefaultModel {
			t.Errorf("expected default model %q to be filled in, got %q", openai.DefaultModel, gotReq.Model)
		}
		if gotReq.Temperature == nil || *gotReq.Temperature != 0.2 {
			t.Errorf("expected temperature 0.2, got %v", gotReq.Temperature)
		}
	})

	t.Run("Temperature omitted when unset", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), &openai.ChatCompletionRequest{
			Model:    "custom-model",
			Messages: []openai.ChatMessage{{Role: openai.RoleUser, Content: "hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotReq.Temperature != nil {
			t.Errorf("expected no temperature, got %v", *gotReq.Temperature)
		}
		if gotReq.Model != "custom-model" {
			t.Errorf("expected request model to win, got %q", gotReq.Model)
		}
	})

	t.Run("Empty choices", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), &openai.ChatCompletionRequest{
			Messages: []openai.ChatMessage{{Role: openai.RoleUser, Content: "no_choices"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.FirstContent() != "" {
			t.Errorf("expected empty content, got %q", resp.FirstContent())
		}
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), &openai.ChatCompletionRequest{
			Messages: []openai.ChatMessage{{Role: openai.RoleUser, Content: "cause_500"}},
		})
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Auth error message is decoded", func(t *testing.T) {
		bad, _ := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := bad.CreateChatCompletion(context.Background(), &openai.ChatCompletionRequest{
			Messages: []openai.ChatMessage{{Role: openai.RoleUser, Content: "hello"}},
		})
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "bad key" {
			t.Errorf("expected decoded 'bad key' message, got %v", err)
		}
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestFirstContent_NilResponse(t *testing.T) {
	var resp *openai.ChatCompletionResponse
	if resp.FirstContent() != "" {
		t.Error("expected empty string from nil response")
	}
}

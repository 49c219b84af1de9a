package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicCompleteJSON(t *testing.T) {
	var captured anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		if got := r.Header.Get("Anthropic-Version"); got != "2023-06-01" {
			t.Errorf("expected version header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"ok\":true}"}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	provider := NewAnthropicProvider(Config{
		Model:  "claude-sonnet-4-20250514",
		APIKey: "test-key",
		APIURL: server.URL,
	})

	out, err := provider.CompleteJSON(context.Background(), Request{
		System: "You write ads.",
		User:   "Write one.",
	})
	if err != nil {
		t.Fatalf("CompleteJSON: %v", err)
	}
	if string(out) != `{"ok":true}` {
		t.Errorf("unexpected completion %q", out)
	}

	if captured.System != "You write ads." {
		t.Errorf("expected system prompt in request, got %q", captured.System)
	}
	if captured.MaxTokens != defaultAnthropicMaxTokens {
		t.Errorf("expected default max_tokens, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Errorf("expected single user message, got %+v", captured.Messages)
	}
}

func TestAnthropicCompleteJSONEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	provider := NewAnthropicProvider(Config{Model: "claude-sonnet-4-20250514", APIKey: "k", APIURL: server.URL})
	if _, err := provider.CompleteJSON(context.Background(), Request{User: "hi"}); err == nil {
		t.Fatal("expected error for empty completion")
	}
}

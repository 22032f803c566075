package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestChatClient_SendsExpectedRequest(t *testing.T) {
	var gotAuth string
	var gotReq chatReq

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
		})
	}))
	defer srv.Close()

	client := NewChatClient(srv.URL, "sk-test", "llama-3.3-70b", 5*time.Second)
	reply, err := client.Chat(context.Background(), []Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "hello there" {
		t.Fatalf("unexpected reply %q", reply)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotReq.Model != "llama-3.3-70b" {
		t.Fatalf("unexpected model %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 {
		t.Fatalf("unexpected temperature %v", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages %+v", gotReq.Messages)
	}
}

func TestChatClient_ProviderErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer srv.Close()

	client := NewChatClient(srv.URL, "sk-test", "llama-3.3-70b", 5*time.Second)
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("expected provider message in error, got %v", err)
	}
}

func TestChatClient_RequiresAPIKey(t *testing.T) {
	client := NewChatClient("http://localhost:0", "", "m", time.Second)
	if _, err := client.Chat(context.Background(), nil); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}

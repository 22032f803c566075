package ai

import (
	"context"
	"strings"
	"testing"
)

type recordingProvider struct {
	name  string
	reply string
	last  []Message
	calls int
}

func (p *recordingProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	p.calls++
	p.last = append([]Message(nil), messages...)
	return p.reply, nil
}

func TestResolve_TotalAndDeterministic(t *testing.T) {
	cases := []struct {
		mode     string
		provider string
		model    string
	}{
		{ModeReasoning, ProviderCerebras, CerebrasModel},
		{ModeCode, ProviderCerebras, CerebrasModel},
		{ModeCerebras, ProviderCerebras, CerebrasModel},
		{ModeChat, ProviderGroq, GroqModel},
		{ModeGroq, ProviderGroq, GroqModel},
		{"", ProviderGroq, GroqModel},
		{"definitely-not-a-mode", ProviderGroq, GroqModel},
	}

	for _, tc := range cases {
		route := Resolve(tc.mode)
		if route.Provider != tc.provider {
			t.Errorf("Resolve(%q): provider = %q, want %q", tc.mode, route.Provider, tc.provider)
		}
		if route.Model != tc.model {
			t.Errorf("Resolve(%q): model = %q, want %q", tc.mode, route.Model, tc.model)
		}
		if route.SystemPrompt == "" {
			t.Errorf("Resolve(%q): empty system prompt", tc.mode)
		}
		if again := Resolve(tc.mode); again != route {
			t.Errorf("Resolve(%q) not deterministic", tc.mode)
		}
	}
}

func TestResolve_PromptsPerMode(t *testing.T) {
	if p := Resolve(ModeCode).SystemPrompt; !strings.Contains(p, "software engineer") {
		t.Errorf("code prompt should be the engineering prompt, got %q", p)
	}
	if p := Resolve(ModeReasoning).SystemPrompt; !strings.Contains(p, "multi-step analysis") {
		t.Errorf("reasoning prompt should be the deep-analysis prompt, got %q", p)
	}
	if p := Resolve(ModeChat).SystemPrompt; p != promptDefault {
		t.Errorf("chat prompt should be the generic prompt, got %q", p)
	}
	// mode "cerebras" uses the reasoning engine prompt, not the code one
	if p := Resolve(ModeCerebras).SystemPrompt; p != promptReason {
		t.Errorf("cerebras prompt should be the reasoning prompt, got %q", p)
	}
}

func TestRouterComplete_DispatchAndMessageShape(t *testing.T) {
	groq := &recordingProvider{name: "groq", reply: "from groq"}
	cerebras := &recordingProvider{name: "cerebras", reply: "from cerebras"}
	r := NewRouter(groq, cerebras)

	reply, err := r.Complete(context.Background(), ModeCode, "write a loop")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != "from cerebras" {
		t.Fatalf("expected cerebras dispatch, got %q", reply)
	}
	if groq.calls != 0 {
		t.Fatalf("groq should not be called for code mode")
	}
	if len(cerebras.last) != 2 {
		t.Fatalf("expected system + user message, got %d", len(cerebras.last))
	}
	if cerebras.last[0].Role != "system" || cerebras.last[1].Role != "user" {
		t.Fatalf("unexpected message roles: %q, %q", cerebras.last[0].Role, cerebras.last[1].Role)
	}
	if cerebras.last[1].Content != "write a loop" {
		t.Fatalf("unexpected user content: %q", cerebras.last[1].Content)
	}

	reply, err = r.Complete(context.Background(), "unknown-mode", "hi")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != "from groq" {
		t.Fatalf("unknown mode should fall through to groq, got %q", reply)
	}
}

func TestRouterComplete_MissingProvider(t *testing.T) {
	r := NewRouter(&recordingProvider{reply: "ok"}, nil)
	if _, err := r.Complete(context.Background(), ModeReasoning, "hi"); err == nil {
		t.Fatalf("expected error for unconfigured provider")
	}
}

func TestKnownMode(t *testing.T) {
	for _, m := range []string{ModeChat, ModeCode, ModeReasoning, ModeGroq, ModeCerebras} {
		if !KnownMode(m) {
			t.Errorf("KnownMode(%q) = false", m)
		}
	}
	if KnownMode("turbo") {
		t.Errorf("KnownMode(turbo) = true")
	}
}

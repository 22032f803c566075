package ai

import (
	"context"
	"fmt"
)

// Conversation modes. The set is closed; unknown values route like ModeChat.
const (
	ModeChat      = "chat"
	ModeCode      = "code"
	ModeReasoning = "reasoning"
	ModeGroq      = "groq"
	ModeCerebras  = "cerebras"
)

const (
	ProviderGroq     = "groq"
	ProviderCerebras = "cerebras"

	GroqModel     = "llama-3.3-70b-versatile"
	CerebrasModel = "llama-3.3-70b"
)

const (
	promptDefault = "You are a helpful, professional AI assistant."
	promptCode    = "You are an expert software engineer. Provide clean, well-documented code."
	promptReason  = "You are AxiomAI's Advanced Reasoning Engine. Your goal is to provide exceptionally deep, multi-step analysis. For every query, break down the problem into fundamental components, evaluate multiple perspectives, identify potential edge cases, and present a rigorous, logical conclusion. Do not simplify; provide the most detailed and comprehensive analysis possible."
)

// KnownMode reports whether m is one of the declared modes.
func KnownMode(m string) bool {
	switch m {
	case ModeChat, ModeCode, ModeReasoning, ModeGroq, ModeCerebras:
		return true
	}
	return false
}

// Route is a resolved provider target for a mode.
type Route struct {
	Provider     string
	Model        string
	SystemPrompt string
}

// Resolve maps a mode to its provider, model and system prompt. The mapping is
// total: reasoning, code and cerebras go to Cerebras, everything else
// (including unrecognized modes) falls through to Groq.
func Resolve(mode string) Route {
	switch mode {
	case ModeCode:
		return Route{Provider: ProviderCerebras, Model: CerebrasModel, SystemPrompt: promptCode}
	case ModeReasoning, ModeCerebras:
		return Route{Provider: ProviderCerebras, Model: CerebrasModel, SystemPrompt: promptReason}
	default:
		return Route{Provider: ProviderGroq, Model: GroqModel, SystemPrompt: promptDefault}
	}
}

// Router dispatches completion requests to the provider selected by mode.
type Router struct {
	groq     Provider
	cerebras Provider
}

func NewRouter(groq, cerebras Provider) *Router {
	return &Router{groq: groq, cerebras: cerebras}
}

// Complete issues a single completion: one system prompt plus the user text.
// No conversation history is forwarded. Failures surface as-is; the caller
// decides how to classify them.
func (r *Router) Complete(ctx context.Context, mode, userText string) (string, error) {
	route := Resolve(mode)

	var p Provider
	switch route.Provider {
	case ProviderCerebras:
		p = r.cerebras
	default:
		p = r.groq
	}
	if p == nil {
		return "", fmt.Errorf("ai: provider %s not configured", route.Provider)
	}

	return p.Chat(ctx, []Message{
		{Role: "system", Content: route.SystemPrompt},
		{Role: "user", Content: userText},
	})
}

package service

import (
	"fmt"
	"testing"

	"github.com/voyago/concierge/internal/domain"
)

func historyOf(n int) []domain.Message {
	msgs := []domain.Message{{Role: domain.RoleSystem, Content: "seeded generic prompt"}}
	for i := 0; i < n; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		msgs = append(msgs, domain.Message{Role: role, Content: fmt.Sprintf("entry %d", i)})
	}
	return msgs
}

func TestAssembleOutboundSlidingWindow(t *testing.T) {
	out := assembleOutbound("chosen prompt", historyOf(14), "new message")

	if len(out) != 12 {
		t.Fatalf("expected 12 outbound messages, got %d", len(out))
	}
	if out[0].Role != domain.RoleSystem || out[0].Content != "chosen prompt" {
		t.Fatalf("first message must be the chosen system prompt: %+v", out[0])
	}
	// Oldest entries dropped: the window starts at entry 4.
	if out[1].Content != "entry 4" {
		t.Fatalf("expected window to start at entry 4, got %q", out[1].Content)
	}
	if out[10].Content != "entry 13" {
		t.Fatalf("expected newest history entry last in window, got %q", out[10].Content)
	}
	if out[11].Role != domain.RoleUser || out[11].Content != "new message" {
		t.Fatalf("last message must be the new user message: %+v", out[11])
	}
}

func TestAssembleOutboundSingleSystemMessage(t *testing.T) {
	out := assembleOutbound("chosen prompt", historyOf(3), "hi")

	systemCount := 0
	for _, m := range out {
		if m.Role == domain.RoleSystem {
			systemCount++
		}
	}
	if systemCount != 1 {
		t.Fatalf("expected exactly 1 system message, got %d", systemCount)
	}
}

func TestAssembleOutboundShortHistory(t *testing.T) {
	out := assembleOutbound("prompt", nil, "hello")
	if len(out) != 2 {
		t.Fatalf("expected system + user, got %d messages", len(out))
	}
}

func TestGenericPrompt(t *testing.T) {
	if got := genericPrompt(historyOf(2)); got != "seeded generic prompt" {
		t.Fatalf("expected seeded prompt, got %q", got)
	}
	if got := genericPrompt(nil); got != defaultSystemPrompt {
		t.Fatalf("expected default prompt, got %q", got)
	}
}

package service

import (
	"github.com/voyago/concierge/internal/adapter/llm"
	"github.com/voyago/concierge/internal/domain"
)

// historyWindow bounds how many stored history entries go out per call
// (5 user/assistant turn pairs), keeping the payload under the external
// service's request-size limit.
const historyWindow = 10

// assembleOutbound builds the message list for the chat-completion call:
// exactly one system message, then at most the last historyWindow history
// entries (oldest dropped first), then the new user message. System-role
// entries stored in history are excluded; the chosen prompt supersedes the
// stored one for this call only.
func assembleOutbound(systemPrompt string, history []domain.Message, userMessage string) []llm.ChatMessage {
	recent := make([]domain.Message, 0, len(history))
	for _, m := range history {
		if m.Role == domain.RoleSystem {
			continue
		}
		recent = append(recent, m)
	}
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	out := make([]llm.ChatMessage, 0, len(recent)+2)
	out = append(out, llm.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	for _, m := range recent {
		out = append(out, llm.ChatMessage{Role: m.Role, Content: m.Content})
	}
	out = append(out, llm.ChatMessage{Role: domain.RoleUser, Content: userMessage})
	return out
}

// genericPrompt returns the session's seeded system prompt when present,
// falling back to the default assistant prompt.
func genericPrompt(history []domain.Message) string {
	if len(history) > 0 && history[0].Role == domain.RoleSystem {
		return history[0].Content
	}
	return defaultSystemPrompt
}

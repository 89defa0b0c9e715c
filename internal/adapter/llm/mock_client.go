package llm

import (
	"context"
	"fmt"
	"time"
)

// MockClient is a mock implementation of ChatClient for local development
// and testing without an API key.
type MockClient struct{}

// NewMockClient creates a new mock chat client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements ChatClient interface.
var _ ChatClient = (*MockClient)(nil)

// CreateChatCompletion returns a mock response echoing the last user message.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    "assistant",
					Content: m.generateMockResponse(req),
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{},
	}, nil
}

func (m *MockClient) generateMockResponse(req *ChatCompletionRequest) string {
	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}

	if lastUserMessage == "" {
		return "[MOCK] This is a mock response from the chat client."
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

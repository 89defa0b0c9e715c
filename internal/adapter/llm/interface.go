// Package llm provides an abstraction for the chat-completion API client.
package llm

import "context"

// ChatClient defines the interface for chat-completion operations.
type ChatClient interface {
	// CreateChatCompletion sends a non-streaming chat completion request.
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure Client implements ChatClient interface.
var _ ChatClient = (*Client)(nil)

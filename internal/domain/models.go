// Package domain defines the core domain models for the concierge.
package domain

import "time"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session represents a conversation session.
type Session struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single message in a session.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // system, user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success response for POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

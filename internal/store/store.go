// Package store defines the session-store interface and implementations.
package store

import (
	"context"

	"github.com/voyago/concierge/internal/domain"
)

// Store defines the interface for session and history persistence. A session's
// history is an ordered message sequence; entry 0 is the generic system prompt
// the session was seeded with and is never rewritten.
type Store interface {
	// EnsureSession creates the session if it does not exist, seeding its
	// history with the given system prompt. Existing sessions are untouched.
	EnsureSession(ctx context.Context, sessionID, systemPrompt string) (*domain.Session, error)

	// GetMessages returns the session's full history in append order.
	GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// AppendMessages appends messages to the session's history in order.
	AppendMessages(ctx context.Context, sessionID string, messages ...domain.Message) error

	// Lifecycle
	Close() error
}

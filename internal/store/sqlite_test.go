package store

import (
	"context"
	"testing"

	"github.com/voyago/concierge/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnsureSessionSeedsSystemMessage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session, err := store.EnsureSession(ctx, "s1", "You are a helpful chat assistant.")
	if err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}
	if session.SessionID != "s1" {
		t.Fatalf("unexpected session: %+v", session)
	}

	messages, err := store.GetMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleSystem || messages[0].Content != "You are a helpful chat assistant." {
		t.Fatalf("unexpected seed message: %+v", messages[0])
	}
}

func TestEnsureSessionIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.EnsureSession(ctx, "s1", "prompt"); err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}
	if _, err := store.EnsureSession(ctx, "s1", "a different prompt"); err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}

	messages, err := store.GetMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("re-ensuring must not reseed, got %d messages", len(messages))
	}
	if messages[0].Content != "prompt" {
		t.Fatalf("seed prompt must stay immutable, got %q", messages[0].Content)
	}
}

func TestAppendMessagesPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.EnsureSession(ctx, "s1", "sys"); err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}

	err := store.AppendMessages(ctx, "s1",
		domain.Message{Role: domain.RoleUser, Content: "first"},
		domain.Message{Role: domain.RoleAssistant, Content: "second"},
		domain.Message{Role: domain.RoleUser, Content: "third"},
	)
	if err != nil {
		t.Fatalf("AppendMessages failed: %v", err)
	}

	messages, err := store.GetMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	for i, want := range []string{"sys", "first", "second", "third"} {
		if messages[i].Content != want {
			t.Fatalf("message %d = %q, want %q", i, messages[i].Content, want)
		}
	}
}

func TestGetMessagesUnknownSession(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	messages, err := store.GetMessages(ctx, "nope")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty history, got %d", len(messages))
	}
}

package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvConciergeMode is the environment variable name for mode selection.
	EnvConciergeMode = "CONCIERGE_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewChatClient creates a chat client based on the CONCIERGE_MODE environment
// variable. If CONCIERGE_MODE=MOCK, returns a MockClient; otherwise returns a
// real Client.
func NewChatClient(baseURL, apiKey string, timeout time.Duration) ChatClient {
	if os.Getenv(EnvConciergeMode) == ModeMock {
		log.Println("CONCIERGE_MODE=MOCK detected, using mock chat client")
		return NewMockClient()
	}

	if apiKey == "" {
		log.Println("WARN: GROQ_API_KEY not set, chat completion calls will fail")
	}
	return NewClient(baseURL, apiKey, timeout)
}

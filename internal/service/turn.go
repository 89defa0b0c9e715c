package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/voyago/concierge/internal/adapter/llm"
	"github.com/voyago/concierge/internal/domain"
	"github.com/voyago/concierge/internal/season"
	"github.com/voyago/concierge/internal/traveler"
)

// defaultSystemPrompt is the generic assistant prompt every new session is
// seeded with. It is immutable for the session's lifetime.
const defaultSystemPrompt = "You are a helpful chat assistant."

// Static invocation parameters for the chat-completion call. The core never
// varies these per request.
var (
	chatTemperature = 1.0
	chatMaxTokens   = 1024
	chatTopP        = 1.0
	enabledTools    = []string{"web_search", "code_interpreter", "visit_website"}
)

// EnsureSession creates the session with the generic system prompt if it does
// not exist yet.
func (s *Service) EnsureSession(ctx context.Context, sessionID string) error {
	_, err := s.store.EnsureSession(ctx, sessionID, defaultSystemPrompt)
	return err
}

// ProcessTurn runs one chat turn: extract a traveler name, resolve the
// season, match the profile, select the system prompt, call the
// chat-completion service and record the turn. On season mismatch no external
// call is made; the rejection message becomes the assistant turn. On external
// failure the turn is not recorded.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, userMessage string) (string, error) {
	if err := s.EnsureSession(ctx, sessionID); err != nil {
		return "", fmt.Errorf("ensure session: %w", err)
	}

	history, err := s.store.GetMessages(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	result := s.resolveProfile(userMessage)

	if result.Outcome == traveler.OutcomeSeasonMismatch {
		err := s.store.AppendMessages(ctx, sessionID,
			domain.Message{Role: domain.RoleUser, Content: userMessage},
			domain.Message{Role: domain.RoleAssistant, Content: result.Rejection},
		)
		if err != nil {
			return "", fmt.Errorf("record rejection turn: %w", err)
		}
		return result.Rejection, nil
	}

	systemPrompt := genericPrompt(history)
	if result.Outcome == traveler.OutcomeMatched {
		log.Printf("Creating personalized prompt for %s...", result.Profile.Name)
		systemPrompt = traveler.PersonalizedSystemPrompt(result.Profile)
	}

	req := &llm.ChatCompletionRequest{
		Model:               s.config.LLMModel,
		Messages:            assembleOutbound(systemPrompt, history, userMessage),
		Temperature:         &chatTemperature,
		MaxCompletionTokens: &chatMaxTokens,
		TopP:                &chatTopP,
		CompoundCustom: &llm.CompoundCustom{
			Tools: llm.CompoundTools{EnabledTools: enabledTools},
		},
	}

	resp, err := s.chat.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return "", errors.New("chat completion: empty response")
	}
	reply := resp.Choices[0].Message.Content

	err = s.store.AppendMessages(ctx, sessionID,
		domain.Message{Role: domain.RoleUser, Content: userMessage},
		domain.Message{Role: domain.RoleAssistant, Content: reply},
	)
	if err != nil {
		// The reply already exists; losing the history append should not
		// fail the turn.
		log.Printf("WARN: failed to record turn for session %s: %v", sessionID, err)
	}

	return reply, nil
}

// resolveProfile runs name extraction, season resolution and profile
// matching. Every failure mode short of a season mismatch collapses to
// OutcomeNoProfile; dataset problems are logged distinctly for diagnosis.
func (s *Service) resolveProfile(userMessage string) traveler.MatchResult {
	name := traveler.ExtractName(userMessage)
	if name == "" {
		return traveler.MatchResult{Outcome: traveler.OutcomeNoProfile}
	}

	current := season.ForDate(s.now())
	rec, err := s.profiles.Lookup(name)
	switch {
	case errors.Is(err, traveler.ErrProfileNotFound):
		log.Printf("No profile found for traveler: %s", name)
		return traveler.MatchResult{Outcome: traveler.OutcomeNoProfile}
	case errors.Is(err, traveler.ErrStoreUnavailable):
		log.Printf("WARN: profile dataset unavailable: %v", err)
		return traveler.MatchResult{Outcome: traveler.OutcomeNoProfile}
	case err != nil:
		log.Printf("WARN: profile lookup for %s failed: %v", name, err)
		return traveler.MatchResult{Outcome: traveler.OutcomeNoProfile}
	}

	return traveler.Match(rec, current)
}

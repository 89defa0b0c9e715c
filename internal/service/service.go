// Package service implements the chat-turn pipeline: name extraction, season
// resolution, profile matching, prompt selection and the outbound call to the
// chat-completion service.
package service

import (
	"time"

	"github.com/voyago/concierge/internal/adapter/llm"
	"github.com/voyago/concierge/internal/config"
	"github.com/voyago/concierge/internal/store"
	"github.com/voyago/concierge/internal/traveler"
)

type Service struct {
	store    store.Store
	profiles traveler.Store
	chat     llm.ChatClient
	config   *config.Config

	// now supplies the current date for season resolution; overridden in tests.
	now func() time.Time
}

func New(st store.Store, profiles traveler.Store, chat llm.ChatClient, cfg *config.Config) *Service {
	return &Service{
		store:    st,
		profiles: profiles,
		chat:     chat,
		config:   cfg,
		now:      time.Now,
	}
}

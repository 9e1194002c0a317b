package ui

import (
	"context"
	"sync"

	"discord-watcher/internal/notify"
	"discord-watcher/internal/sound"
	"discord-watcher/internal/storage"
	"discord-watcher/internal/watcher"

	"github.com/rs/zerolog"
)

// View is the rendering surface a backend provides to the sink. Both
// implementations are safe to call from the sink's goroutine.
type View interface {
	SetBotName(name string)
	Prepend(line string)
}

// Sink drains the event channel and fans each event out to the desktop
// notification, the audio cue and the on-screen log.
type Sink struct {
	view   View
	player *sound.Player // nil when audio is unavailable
	store  *storage.Storage
	log    zerolog.Logger

	mu       sync.Mutex
	settings storage.Settings
}

func NewSink(view View, player *sound.Player, store *storage.Storage, settings storage.Settings, log zerolog.Logger) *Sink {
	return &Sink{
		view:     view,
		player:   player,
		store:    store,
		log:      log,
		settings: settings,
	}
}

// Run consumes events until the channel closes or ctx is canceled.
func (s *Sink) Run(ctx context.Context, events <-chan watcher.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handle(ev)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sink) handle(ev watcher.Event) {
	line := Render(ev)

	if ev.Type == watcher.EventBotConnected {
		s.view.SetBotName(ev.BotName)
		s.log.Info().Str("bot", ev.BotName).Msg("Connected")
		return
	}

	s.view.Prepend(line)
	s.log.Info().Str("event", string(ev.Type)).Msg(line)

	// Unclassified lines stay in the log only; a raw snapshot dump makes
	// a poor notification.
	if ev.Type == watcher.EventUnclassified {
		return
	}

	set := s.Settings()
	if set.Notifications {
		if err := notify.Push(line); err != nil {
			s.log.Warn().Err(err).Msg("Failed to push notification")
		}
	}
	if set.Sound && s.player != nil {
		s.player.Play()
	}
}

func (s *Sink) Settings() storage.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings swaps the toggles and persists them for the next run.
func (s *Sink) SetSettings(set storage.Settings) {
	s.mu.Lock()
	s.settings = set
	s.mu.Unlock()

	if err := s.store.SetSettings(set); err != nil {
		s.log.Warn().Err(err).Msg("Failed to persist settings")
	}
}

package discord

import (
	"context"
	"fmt"
	"sync"

	"discord-watcher/internal/config"
	"discord-watcher/internal/watcher"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot is the gateway-facing worker: it receives upstream events and
// drives resolver, classifier and state store, pushing results onto the
// pipeline's channel. It never renders anything itself.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	pipe     *watcher.Pipeline
	resolver *watcher.Resolver
	log      zerolog.Logger

	ctx context.Context

	mu        sync.Mutex
	announced map[string]bool // guilds whose startup sweep already ran
}

func NewBot(cfg *config.Config, pipe *watcher.Pipeline, log zerolog.Logger) *Bot {
	return &Bot{
		cfg:       cfg,
		pipe:      pipe,
		log:       log,
		announced: make(map[string]bool),
	}
}

// Run connects to the gateway and blocks until ctx is canceled. A failed
// connection or rejected token is fatal; reconnects after a successful
// start are discordgo's responsibility.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.ctx = ctx
	b.resolver = watcher.NewResolver(newStateDirectory(dg))

	// Handlers run on the read loop so per-user event order is preserved;
	// a blocking channel send stalls delivery, not the rest of the app.
	dg.SyncEvents = true
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.pipe.Close()
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) watchesGuild(guildID string) bool {
	return b.cfg.GuildID == "" || b.cfg.GuildID == guildID
}

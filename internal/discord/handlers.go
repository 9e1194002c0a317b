package discord

import (
	"github.com/bwmarrin/discordgo"

	"discord-watcher/internal/watcher"
)

// onReady marks the connection live: the watcher goes invisible (it
// observes, it does not participate) and the UI learns the bot's name.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusInvisible),
	})
	if err != nil {
		b.log.Warn().Err(err).Msg("Failed to set invisible presence")
	}

	name := ""
	if r.User != nil {
		name = r.User.Username
	}
	b.log.Info().Str("bot", name).Msg("Discord watcher is connected")

	if err := b.pipe.Announce(b.ctx, watcher.Event{Type: watcher.EventBotConnected, BotName: name}); err != nil {
		b.log.Error().Err(err).Msg("Presentation layer gone, dropping gateway worker")
	}
}

// onGuildCreate runs the startup sweep: every user already sitting in a
// voice channel when we connect is announced once, and seeded into the
// state store so their next transition diffs against a real previous.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !b.watchesGuild(g.ID) {
		return
	}

	b.mu.Lock()
	if b.announced[g.ID] {
		b.mu.Unlock()
		return
	}
	b.announced[g.ID] = true
	b.mu.Unlock()

	b.log.Info().Str("guild", g.Name).Int("voice_states", len(g.VoiceStates)).Msg("Sweeping voice channels")

	for _, vs := range g.VoiceStates {
		if vs.ChannelID == "" {
			continue
		}
		snap := b.resolver.Resolve(rawFromVoiceState(vs))
		if err := b.pipe.AnnouncePresent(b.ctx, snap); err != nil {
			b.log.Error().Err(err).Msg("Presentation layer gone, aborting sweep")
			return
		}
	}
}

// onVoiceStateUpdate feeds one transition through the pipeline. The
// previous state comes from the gateway cache when available; otherwise
// the pipeline falls back to its own last-known-state store.
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.VoiceState == nil || !b.watchesGuild(v.GuildID) {
		return
	}

	var prev *watcher.Snapshot
	if v.BeforeUpdate != nil {
		p := b.resolver.Resolve(rawFromVoiceState(v.BeforeUpdate))
		prev = &p
	}
	cur := b.resolver.Resolve(rawFromVoiceState(v.VoiceState))

	if err := b.pipe.Process(b.ctx, prev, cur); err != nil {
		b.log.Error().Err(err).Str("user", cur.Username).Msg("Presentation layer gone, dropping event")
	}
}

func rawFromVoiceState(vs *discordgo.VoiceState) watcher.RawState {
	return watcher.RawState{
		UserID:     vs.UserID,
		GuildID:    vs.GuildID,
		ChannelID:  vs.ChannelID,
		SelfMute:   vs.SelfMute,
		SelfDeaf:   vs.SelfDeaf,
		SelfStream: vs.SelfStream,
		SelfVideo:  vs.SelfVideo,
	}
}

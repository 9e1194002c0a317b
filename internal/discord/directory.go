package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// stateDirectory resolves names through the session state cache, falling
// back to the REST API behind a small rate limit. A lookup that fails
// both ways degrades to ok=false; the snapshot keeps its empty default
// and the pipeline moves on.
type stateDirectory struct {
	s    *discordgo.Session
	rest *rate.Limiter
}

func newStateDirectory(s *discordgo.Session) *stateDirectory {
	return &stateDirectory{
		s:    s,
		rest: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
	}
}

func (d *stateDirectory) UserName(userID string) (string, bool) {
	for _, g := range d.s.State.Guilds {
		if m, err := d.s.State.Member(g.ID, userID); err == nil && m.User != nil {
			return m.User.Username, true
		}
	}
	if !d.rest.Allow() {
		return "", false
	}
	user, err := d.s.User(userID)
	if err != nil {
		return "", false
	}
	return user.Username, true
}

func (d *stateDirectory) ChannelName(channelID string) (string, bool) {
	channel, err := d.s.State.Channel(channelID)
	if err != nil {
		if !d.rest.Allow() {
			return "", false
		}
		channel, err = d.s.Channel(channelID)
		if err != nil {
			return "", false
		}
	}
	return channel.Name, true
}

func (d *stateDirectory) GuildName(guildID string) (string, bool) {
	guild, err := d.s.State.Guild(guildID)
	if err != nil {
		if !d.rest.Allow() {
			return "", false
		}
		guild, err = d.s.Guild(guildID)
		if err != nil {
			return "", false
		}
	}
	return guild.Name, true
}

package watcher

// Directory resolves opaque identifiers to display names. Implementations
// are expected to try a local cache first and may fall back to the
// network; they return ok=false when a name cannot be resolved either
// way. A Directory never blocks indefinitely.
type Directory interface {
	UserName(userID string) (string, bool)
	ChannelName(channelID string) (string, bool)
	GuildName(guildID string) (string, bool)
}

// Resolver turns raw gateway voice states into display-ready snapshots.
type Resolver struct {
	dir Directory
}

func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve builds a snapshot from a raw state. Lookups that fail leave the
// documented defaults in place (empty name, false flags) rather than
// surfacing an error: presentation must proceed even for names that are
// permanently unresolvable.
func (r *Resolver) Resolve(raw RawState) Snapshot {
	snap := Snapshot{
		UserID:     raw.UserID,
		ChannelID:  raw.ChannelID,
		SelfMute:   raw.SelfMute,
		SelfDeaf:   raw.SelfDeaf,
		SelfStream: raw.SelfStream,
		SelfVideo:  raw.SelfVideo,
	}
	if name, ok := r.dir.UserName(raw.UserID); ok {
		snap.Username = name
	}
	if raw.ChannelID != "" {
		if name, ok := r.dir.ChannelName(raw.ChannelID); ok {
			snap.ChannelName = name
		}
	}
	if raw.GuildID != "" {
		if name, ok := r.dir.GuildName(raw.GuildID); ok {
			snap.GuildName = name
		}
	}
	return snap
}

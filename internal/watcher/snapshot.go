package watcher

// Snapshot is a fully resolved, display-ready record of one user's voice
// state at a point in time. Immutable once built: the resolver fills it
// and nothing mutates it afterwards.
//
// ChannelID is the source of truth for channel membership; ChannelName is
// display-only and may be empty even when ChannelID is set (resolution
// failure), so membership checks must never branch on the name.
type Snapshot struct {
	UserID      string
	Username    string
	GuildName   string
	ChannelID   string // empty = not in any voice channel
	ChannelName string

	SelfMute   bool
	SelfDeaf   bool
	SelfStream bool
	SelfVideo  bool
}

// InChannel reports whether the user is attached to a voice channel.
func (s Snapshot) InChannel() bool {
	return s.ChannelID != ""
}

// RawState is an already-deserialized voice state as delivered by the
// gateway collaborator, before any name resolution.
type RawState struct {
	UserID    string
	GuildID   string
	ChannelID string

	SelfMute   bool
	SelfDeaf   bool
	SelfStream bool
	SelfVideo  bool
}

package watcher

type EventType string

const (
	EventBotConnected     EventType = "bot_connected"
	EventJoined           EventType = "joined"
	EventAlreadyInChannel EventType = "already_in_channel"
	EventLeft             EventType = "left"
	EventMoved            EventType = "moved"
	EventMuted            EventType = "muted"
	EventUnmuted          EventType = "unmuted"
	EventDeafened         EventType = "deafened"
	EventUndeafened       EventType = "undeafened"
	EventUnclassified     EventType = "unclassified"
)

// Event is one classified voice transition, constructed once by the
// classifier and consumed once by the presentation sink. Only the fields
// matching the type are set: BotName for EventBotConnected, FromChannel
// and ToChannel for EventMoved, RawOld/RawNew for EventUnclassified,
// Channel for everything else.
type Event struct {
	Type EventType

	BotName string

	User    string
	Channel string

	FromChannel string
	ToChannel   string

	RawOld *Snapshot
	RawNew *Snapshot
}

package ui

import (
	"fmt"

	"discord-watcher/internal/watcher"
)

// Render maps a classified event to its display line. Unclassified events
// come out as a raw dump of both snapshots so a gap in the classification
// table can be diagnosed from the log instead of crashing anything.
func Render(ev watcher.Event) string {
	switch ev.Type {
	case watcher.EventBotConnected:
		return fmt.Sprintf("connected as %s", ev.BotName)
	case watcher.EventJoined:
		return fmt.Sprintf("%s joined %s", ev.User, ev.Channel)
	case watcher.EventAlreadyInChannel:
		return fmt.Sprintf("%s is already in %s", ev.User, ev.Channel)
	case watcher.EventLeft:
		return fmt.Sprintf("%s left %s", ev.User, ev.Channel)
	case watcher.EventMoved:
		return fmt.Sprintf("%s moved from %s to %s", ev.User, ev.FromChannel, ev.ToChannel)
	case watcher.EventMuted:
		return fmt.Sprintf("%s muted in %s", ev.User, ev.Channel)
	case watcher.EventUnmuted:
		return fmt.Sprintf("%s unmuted in %s", ev.User, ev.Channel)
	case watcher.EventDeafened:
		return fmt.Sprintf("%s deafened in %s", ev.User, ev.Channel)
	case watcher.EventUndeafened:
		return fmt.Sprintf("%s undeafened in %s", ev.User, ev.Channel)
	case watcher.EventUnclassified:
		return fmt.Sprintf("unclassified: old=%s new=%s", dumpSnapshot(ev.RawOld), dumpSnapshot(ev.RawNew))
	}
	return fmt.Sprintf("unknown event type %q", ev.Type)
}

func dumpSnapshot(s *watcher.Snapshot) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("{user=%s channel=%q(%s) mute=%t deaf=%t stream=%t video=%t}",
		s.Username, s.ChannelName, s.ChannelID, s.SelfMute, s.SelfDeaf, s.SelfStream, s.SelfVideo)
}

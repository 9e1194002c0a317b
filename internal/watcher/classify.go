package watcher

// Classify derives exactly one semantic event from the pairwise diff of a
// previous (possibly absent) and current snapshot for the same user. It is
// pure and total: any input combination yields an event, with
// EventUnclassified as the explicit fallback for transitions outside the
// modeled set.
//
// Priority order, first match wins:
//
//  1. no previous, now in a channel          -> joined
//  2. previous known, now in no channel      -> left (channel name from previous)
//  3. both in a channel:
//     a. channel id changed                  -> moved
//     b. self-deaf flag flipped              -> deafened / undeafened
//     c. self-mute flag flipped              -> muted / unmuted
//  4. anything else                          -> unclassified
//
// A cross-channel move can coincide with flag drift in the transport, so
// the move check runs before the mute/deaf checks: the move is the
// dominant fact. Channel identity is compared by id, never by name, since
// two channels may share a display name.
func Classify(prev *Snapshot, cur Snapshot) Event {
	user := cur.Username
	if user == "" && prev != nil {
		user = prev.Username
	}

	switch {
	case prev == nil && cur.InChannel():
		return Event{Type: EventJoined, User: user, Channel: cur.ChannelName}

	case prev != nil && !cur.InChannel():
		return Event{Type: EventLeft, User: user, Channel: prev.ChannelName}

	case prev != nil && cur.InChannel():
		switch {
		case prev.ChannelID != cur.ChannelID:
			return Event{
				Type:        EventMoved,
				User:        user,
				FromChannel: prev.ChannelName,
				ToChannel:   cur.ChannelName,
			}
		case prev.SelfDeaf != cur.SelfDeaf:
			if cur.SelfDeaf {
				return Event{Type: EventDeafened, User: user, Channel: cur.ChannelName}
			}
			return Event{Type: EventUndeafened, User: user, Channel: cur.ChannelName}
		case prev.SelfMute != cur.SelfMute:
			if cur.SelfMute {
				return Event{Type: EventMuted, User: user, Channel: cur.ChannelName}
			}
			return Event{Type: EventUnmuted, User: user, Channel: cur.ChannelName}
		}
	}

	// No tracked field changed (streaming/video toggles land here), or an
	// update about a user who was and remains outside any channel.
	curCopy := cur
	ev := Event{Type: EventUnclassified, User: user, RawNew: &curCopy}
	if prev != nil {
		prevCopy := *prev
		ev.RawOld = &prevCopy
	}
	return ev
}

package watcher

import (
	"context"
	"sync"
)

// Pipeline ties the last-known-state store and the classifier together
// and pushes every result onto a bounded event channel. The channel is
// deliberately small: the producer suspends when the consumer is behind
// instead of dropping events, which stalls at most the gateway delivery
// loop, not the rest of the process.
type Pipeline struct {
	store  *Store
	events chan Event

	closeOnce sync.Once
}

func NewPipeline(buffer int) *Pipeline {
	if buffer < 1 {
		buffer = 1
	}
	return &Pipeline{
		store:  NewStore(),
		events: make(chan Event, buffer),
	}
}

// Events returns the receive end the presentation layer drains.
func (p *Pipeline) Events() <-chan Event {
	return p.events
}

// Process handles one voice state update. prev is the upstream-supplied
// previous snapshot when the gateway had one cached; when nil, the store
// supplies the last state this process observed for the user. Either way
// the current snapshot is recorded before classification so same-user
// events stay ordered. Blocks while the consumer is behind; a canceled
// context is the signal that the presentation side is gone, which is
// fatal to the calling worker.
func (p *Pipeline) Process(ctx context.Context, prev *Snapshot, cur Snapshot) error {
	stored, seen := p.store.Swap(cur.UserID, cur)
	if prev == nil && seen {
		prevCopy := stored
		prev = &prevCopy
	}
	return p.Announce(ctx, Classify(prev, cur))
}

// AnnouncePresent records a user found in a voice channel during the
// startup sweep and emits the matching event. This is not a diff of two
// snapshots: the sweep lists channel members directly at connect time.
func (p *Pipeline) AnnouncePresent(ctx context.Context, snap Snapshot) error {
	p.store.Put(snap.UserID, snap)
	return p.Announce(ctx, Event{
		Type:    EventAlreadyInChannel,
		User:    snap.Username,
		Channel: snap.ChannelName,
	})
}

// Announce pushes an event onto the channel, suspending until the
// consumer has capacity or ctx is canceled.
func (p *Pipeline) Announce(ctx context.Context, ev Event) error {
	select {
	case p.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the stream. Callers must not Announce after Close; the
// gateway worker closes only after its session has shut down.
func (p *Pipeline) Close() {
	p.closeOnce.Do(func() { close(p.events) })
}

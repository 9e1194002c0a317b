package watcher

import (
	"reflect"
	"testing"
)

func inChannel(user, channelID, channelName string) Snapshot {
	return Snapshot{
		UserID:      "u1",
		Username:    user,
		ChannelID:   channelID,
		ChannelName: channelName,
	}
}

func TestFirstSightingInChannelIsJoin(t *testing.T) {
	ev := Classify(nil, inChannel("alice", "c1", "General"))
	if ev.Type != EventJoined {
		t.Fatalf("expected joined, got %s", ev.Type)
	}
	if ev.User != "alice" || ev.Channel != "General" {
		t.Fatalf("unexpected fields: %+v", ev)
	}
}

func TestFirstSightingOutsideChannelIsUnclassified(t *testing.T) {
	ev := Classify(nil, Snapshot{UserID: "u1", Username: "alice"})
	if ev.Type != EventUnclassified {
		t.Fatalf("expected unclassified, got %s", ev.Type)
	}
	if ev.RawOld != nil {
		t.Fatal("expected no old snapshot for first sighting")
	}
	if ev.RawNew == nil {
		t.Fatal("expected raw new snapshot in fallback event")
	}
}

func TestLeaveUsesPreviousChannelName(t *testing.T) {
	prev := inChannel("alice", "c2", "Gaming")
	ev := Classify(&prev, Snapshot{UserID: "u1", Username: "alice"})
	if ev.Type != EventLeft {
		t.Fatalf("expected left, got %s", ev.Type)
	}
	if ev.Channel != "Gaming" {
		t.Fatalf("expected channel name from previous snapshot, got %q", ev.Channel)
	}
}

func TestMoveComparesChannelIdentityNotName(t *testing.T) {
	// Two distinct channels sharing a display name still count as a move.
	prev := inChannel("alice", "c1", "General")
	ev := Classify(&prev, inChannel("alice", "c2", "General"))
	if ev.Type != EventMoved {
		t.Fatalf("expected moved, got %s", ev.Type)
	}
	if ev.FromChannel != "General" || ev.ToChannel != "General" {
		t.Fatalf("unexpected channel names: %+v", ev)
	}
}

func TestMoveOutranksDeafToggle(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := inChannel("alice", "c2", "Gaming")
	cur.SelfDeaf = true
	ev := Classify(&prev, cur)
	if ev.Type != EventMoved {
		t.Fatalf("move must win over simultaneous deaf toggle, got %s", ev.Type)
	}
}

func TestMoveOutranksMuteToggle(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := inChannel("alice", "c2", "Gaming")
	cur.SelfMute = true
	ev := Classify(&prev, cur)
	if ev.Type != EventMoved {
		t.Fatalf("move must win over simultaneous mute toggle, got %s", ev.Type)
	}
}

func TestDeafToggle(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := prev
	cur.SelfDeaf = true
	if ev := Classify(&prev, cur); ev.Type != EventDeafened {
		t.Fatalf("expected deafened, got %s", ev.Type)
	}
	if ev := Classify(&cur, prev); ev.Type != EventUndeafened {
		t.Fatalf("expected undeafened, got %s", ev.Type)
	}
}

func TestMuteToggle(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := prev
	cur.SelfMute = true
	if ev := Classify(&prev, cur); ev.Type != EventMuted {
		t.Fatalf("expected muted, got %s", ev.Type)
	}
	if ev := Classify(&cur, prev); ev.Type != EventUnmuted {
		t.Fatalf("expected unmuted, got %s", ev.Type)
	}
}

func TestDeafOutranksMute(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := prev
	cur.SelfDeaf = true
	cur.SelfMute = true
	if ev := Classify(&prev, cur); ev.Type != EventDeafened {
		t.Fatalf("deaf toggle must win over simultaneous mute toggle, got %s", ev.Type)
	}
}

func TestStreamToggleIsUnclassified(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := prev
	cur.SelfStream = true
	ev := Classify(&prev, cur)
	if ev.Type != EventUnclassified {
		t.Fatalf("streaming is not a tracked field, got %s", ev.Type)
	}
	if ev.RawOld == nil || ev.RawNew == nil {
		t.Fatal("fallback event must carry both snapshots")
	}
	if !ev.RawNew.SelfStream {
		t.Fatal("raw new snapshot must reflect the stream flag")
	}
}

func TestClassifyIsPure(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := inChannel("alice", "c2", "Gaming")
	first := Classify(&prev, cur)
	second := Classify(&prev, cur)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different events:\n%+v\n%+v", first, second)
	}
}

func TestUsernameFallsBackToPrevious(t *testing.T) {
	prev := inChannel("alice", "c1", "General")
	cur := Snapshot{UserID: "u1"} // resolution failed for the new state
	ev := Classify(&prev, cur)
	if ev.User != "alice" {
		t.Fatalf("expected username from previous snapshot, got %q", ev.User)
	}
}

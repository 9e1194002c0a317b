package watcher

import "testing"

type fakeDirectory struct {
	users    map[string]string
	channels map[string]string
	guilds   map[string]string
}

func (f fakeDirectory) UserName(id string) (string, bool) {
	name, ok := f.users[id]
	return name, ok
}

func (f fakeDirectory) ChannelName(id string) (string, bool) {
	name, ok := f.channels[id]
	return name, ok
}

func (f fakeDirectory) GuildName(id string) (string, bool) {
	name, ok := f.guilds[id]
	return name, ok
}

func TestResolveFillsNamesAndFlags(t *testing.T) {
	r := NewResolver(fakeDirectory{
		users:    map[string]string{"u1": "alice"},
		channels: map[string]string{"c1": "General"},
		guilds:   map[string]string{"g1": "Clubhouse"},
	})

	snap := r.Resolve(RawState{
		UserID:    "u1",
		GuildID:   "g1",
		ChannelID: "c1",
		SelfMute:  true,
		SelfVideo: true,
	})

	if snap.Username != "alice" || snap.ChannelName != "General" || snap.GuildName != "Clubhouse" {
		t.Fatalf("names not resolved: %+v", snap)
	}
	if !snap.SelfMute || snap.SelfDeaf || snap.SelfStream || !snap.SelfVideo {
		t.Fatalf("flags not carried: %+v", snap)
	}
	if !snap.InChannel() {
		t.Fatal("snapshot should report channel membership")
	}
}

func TestResolveDegradesToDefaults(t *testing.T) {
	r := NewResolver(fakeDirectory{})

	snap := r.Resolve(RawState{UserID: "u1", GuildID: "g1", ChannelID: "c1"})

	// Failed lookups leave empty names; the snapshot is still usable and
	// membership still comes from the channel id, never the name.
	if snap.Username != "" || snap.ChannelName != "" || snap.GuildName != "" {
		t.Fatalf("expected empty names on resolution failure: %+v", snap)
	}
	if !snap.InChannel() {
		t.Fatal("unresolved channel name must not hide channel membership")
	}
}

func TestResolveSkipsLookupsForAbsentIDs(t *testing.T) {
	r := NewResolver(fakeDirectory{
		channels: map[string]string{"": "bogus"},
		guilds:   map[string]string{"": "bogus"},
	})

	snap := r.Resolve(RawState{UserID: "u1"})
	if snap.ChannelName != "" || snap.GuildName != "" {
		t.Fatalf("empty ids must not be resolved: %+v", snap)
	}
}

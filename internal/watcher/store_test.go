package watcher

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore()
	if _, ok := st.Get("u1"); ok {
		t.Fatal("empty store should not return a snapshot")
	}

	snap := Snapshot{UserID: "u1", Username: "alice", ChannelID: "c1"}
	st.Put("u1", snap)

	got, ok := st.Get("u1")
	if !ok || got != snap {
		t.Fatalf("round trip failed: got %+v ok=%t", got, ok)
	}
}

func TestStoreSwapReturnsPrevious(t *testing.T) {
	st := NewStore()

	first := Snapshot{UserID: "u1", ChannelID: "c1"}
	if _, ok := st.Swap("u1", first); ok {
		t.Fatal("first swap must report no previous state")
	}

	second := Snapshot{UserID: "u1", ChannelID: "c2"}
	old, ok := st.Swap("u1", second)
	if !ok || old != first {
		t.Fatalf("expected first snapshot back, got %+v ok=%t", old, ok)
	}

	// A leave still overwrites the entry rather than deleting it.
	gone := Snapshot{UserID: "u1"}
	old, ok = st.Swap("u1", gone)
	if !ok || old != second {
		t.Fatalf("expected second snapshot back, got %+v ok=%t", old, ok)
	}
	got, _ := st.Get("u1")
	if got.InChannel() {
		t.Fatal("entry should record the user as outside any channel")
	}
}

func TestStoreConcurrentUsers(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("u%d", i)
			for j := 0; j < 100; j++ {
				st.Swap(id, Snapshot{UserID: id, ChannelID: fmt.Sprintf("c%d", j)})
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 32; i++ {
		id := fmt.Sprintf("u%d", i)
		got, ok := st.Get(id)
		if !ok || got.ChannelID != "c99" {
			t.Fatalf("user %s: expected last write c99, got %+v ok=%t", id, got, ok)
		}
	}
}

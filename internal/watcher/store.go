package watcher

import "sync"

// Store keeps the most recently observed snapshot per user for the
// lifetime of the process. Entries are created on first sighting and
// overwritten on every later event; a "left channel" update still writes
// an entry (with an empty ChannelID) so the next event for that user has
// a valid previous state. The map itself is the shared resource, so all
// access goes through one mutex.
type Store struct {
	mu     sync.Mutex
	states map[string]Snapshot
}

func NewStore() *Store {
	return &Store{states: make(map[string]Snapshot)}
}

func (st *Store) Get(userID string) (Snapshot, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.states[userID]
	return s, ok
}

func (st *Store) Put(userID string, s Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.states[userID] = s
}

// Swap records the snapshot and returns the one it replaced. Read and
// write happen under a single lock acquisition so two events for the same
// user can never observe each other's half-applied update.
func (st *Store) Swap(userID string, s Snapshot) (Snapshot, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	old, ok := st.states[userID]
	st.states[userID] = s
	return old, ok
}

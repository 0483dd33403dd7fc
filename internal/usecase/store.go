package usecase

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

// Store owns the GameState snapshot of one session. All mutations go through Update,
// which runs under a single lock, so they are applied one at a time.
type Store struct {
	mu          sync.Mutex
	state       entity.GameState
	subscribers []func(entity.GameState)
}

func NewStore(initial entity.GameState) *Store {
	return &Store{
		state: initial.Clone(),
	}
}

// Subscribe registers a callback invoked with every new snapshot. Callbacks run while
// the store lock is held, in mutation order, and must not call back into the store.
func (that *Store) Subscribe(fn func(entity.GameState)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.subscribers = append(that.subscribers, fn)
}

// Snapshot returns a copy of the current state.
func (that *Store) Snapshot() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state.Clone()
}

// Update applies fn to the current state. When fn reports a change, the result replaces
// the snapshot and every subscriber is notified exactly once before the lock is released.
func (that *Store) Update(fn func(current entity.GameState) (entity.GameState, bool)) (entity.GameState, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	next, changed := fn(that.state.Clone())
	if !changed {
		return that.state.Clone(), false
	}

	that.state = next.Clone()
	for _, notify := range that.subscribers {
		notify(that.state.Clone())
	}

	return that.state.Clone(), true
}

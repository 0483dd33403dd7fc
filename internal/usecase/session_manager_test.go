package usecase

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-duel/mocks/usecase"
)

var errBrokenPipe = errors.New("broken pipe")

func newTestSessionManager() (*Store, *SessionManager) {
	store := NewStore(entity.NewGameState())
	return store, NewSessionManager(newTestLogger(), store)
}

func TestSessionManager_AssignSlot(t *testing.T) {
	t.Run("Assigns X, then O, then refuses", func(t *testing.T) {
		// Given: an empty session
		store, manager := newTestSessionManager()
		first := newRecordingConnection("first")
		second := newRecordingConnection("second")
		third := newRecordingConnection("third")

		// When: three connections arrive one after another
		slotFirst, errFirst := manager.AssignSlot(first)
		slotSecond, errSecond := manager.AssignSlot(second)
		slotThird, errThird := manager.AssignSlot(third)

		// Then: X and O are handed out and the third is refused
		require.NoError(t, errFirst)
		require.NoError(t, errSecond)
		assert.Equal(t, entity.PlayerX, slotFirst)
		assert.Equal(t, entity.PlayerO, slotSecond)
		require.ErrorIs(t, errThird, apperror.ErrSessionFull)
		assert.Equal(t, entity.EmptyCell, slotThird)

		// And: the connected set lists both slots
		assert.Equal(t, []entity.Slot{entity.PlayerX, entity.PlayerO}, store.Snapshot().ConnectedPlayers)

		// And: every assignment was broadcast to the bound peers, the refused one got nothing
		assert.Equal(t, 2, first.count())
		assert.Equal(t, 1, second.count())
		assert.Equal(t, 0, third.count())
		assert.Equal(t, []entity.Slot{entity.PlayerX}, first.states(t)[0].ConnectedPlayers)
	})

	t.Run("Concurrent connections never share a slot", func(t *testing.T) {
		// Given: an empty session
		_, manager := newTestSessionManager()

		// When: many connections race for a slot
		const attempts = 16
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			assigned = make(map[entity.Slot]int)
			refused  int
		)
		for i := 0; i < attempts; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				slot, err := manager.AssignSlot(newRecordingConnection(fmt.Sprintf("conn-%d", i)))

				mu.Lock()
				defer mu.Unlock()
				if errors.Is(err, apperror.ErrSessionFull) {
					refused++
					return
				}
				assigned[slot]++
			}()
		}
		wg.Wait()

		// Then: exactly one X and one O were handed out
		assert.Equal(t, map[entity.Slot]int{entity.PlayerX: 1, entity.PlayerO: 1}, assigned)
		assert.Equal(t, attempts-2, refused)
	})
}

func TestSessionManager_ReleaseSlot(t *testing.T) {
	t.Run("Release removes the slot and notifies the remaining peer", func(t *testing.T) {
		// Given: two bound players
		store, manager := newTestSessionManager()
		playerX := newRecordingConnection("x")
		playerO := newRecordingConnection("o")
		_, err := manager.AssignSlot(playerX)
		require.NoError(t, err)
		_, err = manager.AssignSlot(playerO)
		require.NoError(t, err)
		sentToO := playerO.count()

		// When: X is released
		manager.ReleaseSlot(entity.PlayerX)

		// Then: only O remains and O learns about it
		assert.Equal(t, []entity.Slot{entity.PlayerO}, store.Snapshot().ConnectedPlayers)
		assert.Equal(t, sentToO+1, playerO.count())
		assert.Equal(t, []entity.Slot{entity.PlayerO}, playerO.last(t).ConnectedPlayers)

		_, bound := manager.Connection(entity.PlayerX)
		assert.False(t, bound)
	})

	t.Run("Releasing a free slot is a no-op", func(t *testing.T) {
		// Given: only X is bound
		store, manager := newTestSessionManager()
		playerX := newRecordingConnection("x")
		_, err := manager.AssignSlot(playerX)
		require.NoError(t, err)
		before := store.Snapshot()
		sent := playerX.count()

		// When: O is released twice
		manager.ReleaseSlot(entity.PlayerO)
		manager.ReleaseSlot(entity.PlayerO)

		// Then: nothing changes and nothing is broadcast
		assert.Equal(t, before, store.Snapshot())
		assert.Equal(t, sent, playerX.count())
	})

	t.Run("Released slot can be assigned again", func(t *testing.T) {
		_, manager := newTestSessionManager()
		_, err := manager.AssignSlot(newRecordingConnection("x"))
		require.NoError(t, err)
		_, err = manager.AssignSlot(newRecordingConnection("o"))
		require.NoError(t, err)

		manager.ReleaseSlot(entity.PlayerX)
		slot, err := manager.AssignSlot(newRecordingConnection("x-again"))

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, slot)

		conn, bound := manager.Connection(entity.PlayerX)
		require.True(t, bound)
		assert.Equal(t, "x-again", conn.ID())
	})
}

func TestSessionManager_Broadcast(t *testing.T) {
	t.Run("A failing peer does not stop delivery to the other", func(t *testing.T) {
		// Given: X's channel is broken and O is healthy
		_, manager := newTestSessionManager()

		brokenX := mockedUseCase.NewMockConnection(t)
		brokenX.EXPECT().ID().Return("broken").Maybe()
		brokenX.EXPECT().Send(mock.Anything).Return(errBrokenPipe)

		playerO := newRecordingConnection("o")

		_, err := manager.AssignSlot(brokenX)
		require.NoError(t, err)
		_, err = manager.AssignSlot(playerO)
		require.NoError(t, err)

		// When: a snapshot is broadcast
		state := entity.NewGameState().WithConnected(entity.PlayerX).WithConnected(entity.PlayerO)
		state.Field[2][2] = entity.PlayerX
		manager.Broadcast(state)

		// Then: O still receives it and X stays bound
		assert.Equal(t, state, playerO.last(t))

		_, bound := manager.Connection(entity.PlayerX)
		assert.True(t, bound)
	})
}

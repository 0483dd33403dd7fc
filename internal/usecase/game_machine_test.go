package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

const testResetDelay = 30 * time.Millisecond

type testTurn struct {
	slot entity.Slot
	x, y int
}

func newTestGameMachine(t *testing.T, delay time.Duration) (*Store, *GameMachine, *recordingConnection) {
	t.Helper()

	store := NewStore(entity.NewGameState())
	manager := NewSessionManager(newTestLogger(), store)
	machine := NewGameMachine(newTestLogger(), store, delay)
	t.Cleanup(machine.Close)

	observer := newRecordingConnection("observer")
	_, err := manager.AssignSlot(observer)
	require.NoError(t, err)

	return store, machine, observer
}

func playTurns(t *testing.T, machine *GameMachine, turns ...testTurn) entity.GameState {
	t.Helper()

	var state entity.GameState
	for _, turn := range turns {
		var accepted bool
		state, accepted = machine.SubmitMove(turn.slot, turn.x, turn.y)
		require.True(t, accepted, "turn %+v", turn)
	}

	return state
}

var xWinsTopRow = []testTurn{
	{entity.PlayerX, 0, 0}, {entity.PlayerO, 0, 1},
	{entity.PlayerX, 1, 0}, {entity.PlayerO, 1, 1},
	{entity.PlayerX, 2, 0},
}

// X O X / X O O / O X X
var drawGame = []testTurn{
	{entity.PlayerX, 0, 0}, {entity.PlayerO, 1, 0},
	{entity.PlayerX, 2, 0}, {entity.PlayerO, 1, 1},
	{entity.PlayerX, 0, 1}, {entity.PlayerO, 2, 1},
	{entity.PlayerX, 1, 2}, {entity.PlayerO, 0, 2},
	{entity.PlayerX, 2, 2},
}

func TestGameMachine_SubmitMove(t *testing.T) {
	t.Run("Accepted move marks the cell, flips the turn and broadcasts once", func(t *testing.T) {
		// Given: a fresh game with one observer
		_, machine, observer := newTestGameMachine(t, time.Hour)
		sent := observer.count()

		// When: X plays the centre
		state, accepted := machine.SubmitMove(entity.PlayerX, 1, 1)

		// Then: the move is applied and broadcast exactly once
		require.True(t, accepted)
		assert.Equal(t, entity.PlayerX, state.Field[1][1])
		assert.Equal(t, entity.PlayerO, state.PlayerAtTurn)
		assert.Equal(t, sent+1, observer.count())
		assert.Equal(t, state, observer.last(t))
	})

	t.Run("Rejected moves change nothing and broadcast nothing", func(t *testing.T) {
		// Given: X has played the corner
		store, machine, observer := newTestGameMachine(t, time.Hour)
		playTurns(t, machine, testTurn{entity.PlayerX, 0, 0})
		before := store.Snapshot()
		sent := observer.count()

		rejected := []testTurn{
			{entity.PlayerO, 0, 0},  // occupied
			{entity.PlayerX, 1, 1},  // wrong turn
			{entity.PlayerO, -1, 0}, // out of range
			{entity.PlayerO, 0, 3},  // out of range
			{entity.EmptyCell, 1, 1},
		}

		for _, turn := range rejected {
			// When: an illegal move is submitted
			_, accepted := machine.SubmitMove(turn.slot, turn.x, turn.y)

			// Then: it is rejected
			assert.False(t, accepted, "turn %+v", turn)
		}

		// And: the state and the broadcast count are unchanged
		assert.Equal(t, before, store.Snapshot())
		assert.Equal(t, sent, observer.count())
	})

	t.Run("X wins the top row and further moves are rejected", func(t *testing.T) {
		// Given: a fresh game
		_, machine, _ := newTestGameMachine(t, time.Hour)

		// When: X completes the top row
		state := playTurns(t, machine, xWinsTopRow...)

		// Then: X is the winner
		assert.Equal(t, entity.PlayerX, state.WinningPlayer)
		assert.False(t, state.IsBoardFull)

		// And: neither player can move until the reset
		_, accepted := machine.SubmitMove(entity.PlayerO, 2, 2)
		assert.False(t, accepted)
		_, accepted = machine.SubmitMove(entity.PlayerX, 2, 2)
		assert.False(t, accepted)
	})

	t.Run("Alternating moves without a line end in a draw", func(t *testing.T) {
		_, machine, _ := newTestGameMachine(t, time.Hour)

		state := playTurns(t, machine, drawGame...)

		assert.True(t, state.IsBoardFull)
		assert.Equal(t, entity.EmptyCell, state.WinningPlayer)
		assert.Equal(t, entity.StatusDraw, state.Status())
	})
}

func TestGameMachine_Reset(t *testing.T) {
	t.Run("Exactly one reset fires after a win", func(t *testing.T) {
		// Given: X won the round
		store, machine, observer := newTestGameMachine(t, testResetDelay)
		playTurns(t, machine, xWinsTopRow...)
		afterWin := observer.count()

		// When: the reset delay elapses
		require.Eventually(t, func() bool {
			return store.Snapshot().Field == entity.Board{}
		}, time.Second, 5*time.Millisecond)
		time.Sleep(3 * testResetDelay)

		// Then: the board is clear, X moves first and a single reset was broadcast
		state := store.Snapshot()
		assert.Equal(t, entity.PlayerX, state.PlayerAtTurn)
		assert.Equal(t, entity.EmptyCell, state.WinningPlayer)
		assert.False(t, state.IsBoardFull)
		assert.Equal(t, afterWin+1, observer.count())
		assert.Equal(t, state, observer.last(t))

		// And: the new round accepts moves again
		_, accepted := machine.SubmitMove(entity.PlayerX, 1, 1)
		assert.True(t, accepted)
	})

	t.Run("Draw also resets", func(t *testing.T) {
		store, machine, _ := newTestGameMachine(t, testResetDelay)
		playTurns(t, machine, drawGame...)

		require.Eventually(t, func() bool {
			return store.Snapshot().Status() == entity.StatusInProgress
		}, time.Second, 5*time.Millisecond)

		assert.Equal(t, entity.Board{}, store.Snapshot().Field)
	})

	t.Run("Re-arming supersedes the pending reset", func(t *testing.T) {
		// Given: X won, which armed the reset timer
		_, machine, observer := newTestGameMachine(t, testResetDelay)
		playTurns(t, machine, xWinsTopRow...)
		afterWin := observer.count()

		// When: the timer is re-armed twice before it fires
		machine.ScheduleReset()
		machine.ScheduleReset()
		time.Sleep(5 * testResetDelay)

		// Then: only one reset was broadcast
		assert.Equal(t, afterWin+1, observer.count())
		assert.Equal(t, entity.Board{}, observer.last(t).Field)
	})

	t.Run("Close cancels the pending reset", func(t *testing.T) {
		// Given: X won, which armed the reset timer
		store, machine, observer := newTestGameMachine(t, testResetDelay)
		playTurns(t, machine, xWinsTopRow...)
		afterWin := observer.count()

		// When: the session is torn down before the timer fires
		machine.Close()
		time.Sleep(3 * testResetDelay)

		// Then: no reset happened
		assert.Equal(t, entity.PlayerX, store.Snapshot().WinningPlayer)
		assert.Equal(t, afterWin, observer.count())

		// And: a closed machine rejects moves and ignores re-arming
		machine.ScheduleReset()
		time.Sleep(3 * testResetDelay)
		assert.Equal(t, entity.PlayerX, store.Snapshot().WinningPlayer)
	})
}

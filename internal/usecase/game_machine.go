package usecase

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/tictactoe"
)

const DefaultResetDelay = 5 * time.Second

// GameMachine validates and applies moves and resets the board after a finished round.
type GameMachine struct {
	logger     *slog.Logger
	store      *Store
	resetDelay time.Duration

	// Fields below are only touched inside store.Update callbacks.
	resetTimer      *time.Timer
	resetGeneration uint64
	closed          bool
}

func NewGameMachine(logger *slog.Logger, store *Store, resetDelay time.Duration) *GameMachine {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}

	return &GameMachine{
		logger:     logger.With("component", "game_machine"),
		store:      store,
		resetDelay: resetDelay,
	}
}

// SubmitMove applies the move if it is legal. Illegal moves leave the state untouched
// and are reported only through the boolean result.
func (that *GameMachine) SubmitMove(slot entity.Slot, x, y int) (entity.GameState, bool) {
	log := that.logger.With("method", "SubmitMove", "slot", slot, "x", x, "y", y)

	var rejection error
	state, accepted := that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		if that.closed {
			rejection = apperror.ErrCoordinatorClosed
			return current, false
		}

		next, err := tictactoe.MakeTurn(current, slot, x, y)
		if err != nil {
			rejection = err
			return current, false
		}

		if next.IsFinished() {
			that.armReset()
		}

		return next, true
	})

	if !accepted {
		log.Debug("move rejected", "reason", rejection)
		return state, false
	}

	if state.IsFinished() {
		log.Info("round finished", "status", state.Status(), "winner", state.WinningPlayer)
	}

	return state, true
}

// ScheduleReset arms the reset timer, superseding any pending one.
func (that *GameMachine) ScheduleReset() {
	that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		if !that.closed {
			that.armReset()
		}

		return current, false
	})
}

// Close cancels a pending reset. No reset fires after Close returns.
func (that *GameMachine) Close() {
	that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		that.closed = true
		that.stopResetTimer()

		return current, false
	})
}

// armReset must be called inside a store.Update callback.
func (that *GameMachine) armReset() {
	that.stopResetTimer()

	generation := that.resetGeneration
	that.resetTimer = time.AfterFunc(that.resetDelay, func() {
		that.reset(generation)
	})
}

// stopResetTimer must be called inside a store.Update callback.
func (that *GameMachine) stopResetTimer() {
	if that.resetTimer != nil {
		that.resetTimer.Stop()
		that.resetTimer = nil
	}

	// a callback that already fired but is still waiting for the lock becomes stale
	that.resetGeneration++
}

func (that *GameMachine) reset(generation uint64) {
	log := that.logger.With("method", "reset")

	_, changed := that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		if that.closed || generation != that.resetGeneration {
			return current, false
		}

		that.resetTimer = nil

		return tictactoe.Reset(current), true
	})

	if changed {
		log.Info("new round started")
	}
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

// MakeTurn applies a move and returns the resulting snapshot. The input state is never modified.
func MakeTurn(state entity.GameState, player entity.Slot, x, y int) (entity.GameState, error) {
	if state.IsFinished() {
		return state, apperror.ErrGameFinished
	}

	if err := validateMove(state, player, x, y); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := state.Clone()
	next.Field[y][x] = player
	next.PlayerAtTurn = player.Opponent()
	updateGameStatus(&next)

	return next, nil
}

// Reset clears the board for a new round; connected players are kept.
func Reset(state entity.GameState) entity.GameState {
	next := state.Clone()
	next.Field = entity.Board{}
	next.PlayerAtTurn = entity.PlayerX
	next.WinningPlayer = entity.EmptyCell
	next.IsBoardFull = false

	return next
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, player entity.Slot, x, y int) error {
	if x < 0 || x >= entity.BoardSize || y < 0 || y >= entity.BoardSize {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if state.PlayerAtTurn != player {
		return apperror.ErrNotYourTurn
	}

	if state.Field[y][x] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move. A completed line wins even on a full board.
func updateGameStatus(state *entity.GameState) {
	state.WinningPlayer = state.Field.Winner()
	state.IsBoardFull = state.WinningPlayer == entity.EmptyCell && state.Field.IsFull()
}

package entity

import "time"

// RoundResult describes a finished round.
type RoundResult struct {
	ID         string    `json:"id"`
	Winner     Slot      `json:"winner"`
	Draw       bool      `json:"draw"`
	Board      Board     `json:"board"`
	FinishedAt time.Time `json:"finished_at"`
}

type Score struct {
	X    int64 `json:"X"`
	O    int64 `json:"O"`
	Draw int64 `json:"draw"`
}

func NewRoundResult(id string, state GameState, finishedAt time.Time) *RoundResult {
	return &RoundResult{
		ID:         id,
		Winner:     state.WinningPlayer,
		Draw:       state.Status() == StatusDraw,
		Board:      state.Field,
		FinishedAt: finishedAt,
	}
}

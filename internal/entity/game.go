package entity

import (
	"encoding/json"
	"fmt"
)

const BoardSize = 3

const (
	PlayerX   Slot = "X"
	PlayerO   Slot = "O"
	EmptyCell Slot = ""
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

var (
	// Slots lists the player slots in assignment preference order.
	Slots = [2]Slot{PlayerX, PlayerO}

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Slot is a turn-order identity. The zero value marks an empty cell or "no winner".
type Slot string

func (that Slot) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Slot) Opponent() Slot {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// MarshalJSON encodes the empty slot as null.
func (that Slot) MarshalJSON() ([]byte, error) {
	if that == EmptyCell {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Slot) UnmarshalJSON(data []byte) error {
	var value *string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal slot: %w", err)
	}

	if value == nil {
		*that = EmptyCell
		return nil
	}

	*that = Slot(*value)

	return nil
}

// Board is indexed as board[y][x].
type Board [BoardSize][BoardSize]Slot

func (that *Board) Cell(index int) Slot {
	return that[index/BoardSize][index%BoardSize]
}

// Winner returns the slot owning the first complete line, or EmptyCell.
func (that *Board) Winner() Slot {
	for _, combo := range WinCombos {
		a, b, c := that.Cell(combo[0]), that.Cell(combo[1]), that.Cell(combo[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// GameState is the authoritative snapshot broadcast to every connected peer.
// It is treated as immutable: every change produces a new value.
type GameState struct {
	PlayerAtTurn     Slot   `json:"playerAtTurn"`
	Field            Board  `json:"field"`
	WinningPlayer    Slot   `json:"winningPlayer"`
	IsBoardFull      bool   `json:"isBoardFull"`
	ConnectedPlayers []Slot `json:"connectedPlayers"`
}

func NewGameState() GameState {
	return GameState{
		PlayerAtTurn:     PlayerX,
		ConnectedPlayers: []Slot{},
	}
}

func (that GameState) Clone() GameState {
	clone := that
	clone.ConnectedPlayers = make([]Slot, len(that.ConnectedPlayers))
	copy(clone.ConnectedPlayers, that.ConnectedPlayers)

	return clone
}

func (that GameState) Status() string {
	switch {
	case that.WinningPlayer != EmptyCell:
		return StatusWon
	case that.IsBoardFull:
		return StatusDraw
	default:
		return StatusInProgress
	}
}

func (that GameState) IsFinished() bool {
	return that.Status() != StatusInProgress
}

func (that GameState) IsConnected(slot Slot) bool {
	for _, connected := range that.ConnectedPlayers {
		if connected == slot {
			return true
		}
	}

	return false
}

// WithConnected returns a copy with the slot added to the connected set.
func (that GameState) WithConnected(slot Slot) GameState {
	clone := that.Clone()
	if that.IsConnected(slot) {
		return clone
	}

	clone.ConnectedPlayers = orderedSlots(append(clone.ConnectedPlayers, slot))

	return clone
}

// WithoutConnected returns a copy with the slot removed from the connected set.
func (that GameState) WithoutConnected(slot Slot) GameState {
	clone := that.Clone()
	connected := make([]Slot, 0, len(clone.ConnectedPlayers))
	for _, current := range clone.ConnectedPlayers {
		if current != slot {
			connected = append(connected, current)
		}
	}
	clone.ConnectedPlayers = connected

	return clone
}

func orderedSlots(slots []Slot) []Slot {
	ordered := make([]Slot, 0, len(slots))
	for _, candidate := range Slots {
		for _, slot := range slots {
			if slot == candidate {
				ordered = append(ordered, slot)
				break
			}
		}
	}

	return ordered
}

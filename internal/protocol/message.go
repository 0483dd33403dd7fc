// Package protocol encodes and decodes the text frames exchanged with game clients.
//
// Inbound frames carry a tagged command, e.g. `make_turn#{"x":1,"y":2}`.
// Outbound frames carry the full JSON game state snapshot.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

const (
	ActionMakeTurn = "make_turn"

	actionSeparator = "#"
)

// InvalidTurn is returned for frames that cannot be decoded. Its coordinates are off the board.
var InvalidTurn = MakeTurn{X: -1, Y: -1}

type MakeTurn struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type makeTurnBody struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// DecodeCommand parses an inbound frame. On failure it returns InvalidTurn together with
// an error wrapping apperror.ErrMalformedMessage.
func DecodeCommand(message []byte) (MakeTurn, error) {
	action, body, found := strings.Cut(string(message), actionSeparator)
	if action != ActionMakeTurn {
		return InvalidTurn, fmt.Errorf("%w: unknown action %q", apperror.ErrMalformedMessage, action)
	}

	if !found {
		return InvalidTurn, fmt.Errorf("%w: missing body", apperror.ErrMalformedMessage)
	}

	var payload makeTurnBody
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return InvalidTurn, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	if payload.X == nil || payload.Y == nil {
		return InvalidTurn, fmt.Errorf("%w: x and y are required", apperror.ErrMalformedMessage)
	}

	return MakeTurn{X: *payload.X, Y: *payload.Y}, nil
}

func EncodeCommand(turn MakeTurn) ([]byte, error) {
	body, err := json.Marshal(turn)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn: %w", err)
	}

	return append([]byte(ActionMakeTurn+actionSeparator), body...), nil
}

func EncodeState(state entity.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}

	return data, nil
}

func DecodeState(data []byte) (entity.GameState, error) {
	var state entity.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return state, nil
}

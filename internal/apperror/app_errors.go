package apperror

import "errors"

var (
	ErrSessionFull       = errors.New("player already connected")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrMalformedMessage  = errors.New("malformed message")
	ErrConnectionClosed  = errors.New("connection is closed")
	ErrSendBufferFull    = errors.New("send buffer is full")
	ErrHistoryDisabled   = errors.New("round history is disabled")
	ErrCoordinatorClosed = errors.New("coordinator is closed")
)

package usecase

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/protocol"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingConnection keeps every payload it was asked to send.
type recordingConnection struct {
	id string

	mu       sync.Mutex
	payloads [][]byte
}

func newRecordingConnection(id string) *recordingConnection {
	return &recordingConnection{id: id}
}

func (that *recordingConnection) ID() string {
	return that.id
}

func (that *recordingConnection) Send(payload []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.payloads = append(that.payloads, payload)

	return nil
}

func (that *recordingConnection) states(t *testing.T) []entity.GameState {
	t.Helper()

	that.mu.Lock()
	defer that.mu.Unlock()

	states := make([]entity.GameState, 0, len(that.payloads))
	for _, payload := range that.payloads {
		state, err := protocol.DecodeState(payload)
		require.NoError(t, err)
		states = append(states, state)
	}

	return states
}

func (that *recordingConnection) count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.payloads)
}

func (that *recordingConnection) last(t *testing.T) entity.GameState {
	t.Helper()

	states := that.states(t)
	require.NotEmpty(t, states)

	return states[len(states)-1]
}

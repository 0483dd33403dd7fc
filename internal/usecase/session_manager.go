package usecase

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/protocol"
)

// Connection is the outbound side of one connected peer.
// Send must only enqueue the payload and return without waiting on the network.
type Connection interface {
	ID() string
	Send(payload []byte) error
}

// SessionManager binds connections to player slots and fans out every snapshot.
type SessionManager struct {
	logger *slog.Logger
	store  *Store

	// connectionsMutex is always acquired after the store lock, never before.
	connectionsMutex sync.Mutex
	connections      map[entity.Slot]Connection
}

func NewSessionManager(logger *slog.Logger, store *Store) *SessionManager {
	manager := &SessionManager{
		logger:      logger.With("component", "session_manager"),
		store:       store,
		connections: make(map[entity.Slot]Connection, len(entity.Slots)),
	}

	store.Subscribe(manager.Broadcast)

	return manager
}

// AssignSlot binds the connection to the first free slot, X before O.
func (that *SessionManager) AssignSlot(conn Connection) (entity.Slot, error) {
	log := that.logger.With("method", "AssignSlot", "connectionID", conn.ID())

	assigned := entity.EmptyCell
	that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		that.connectionsMutex.Lock()
		defer that.connectionsMutex.Unlock()

		for _, slot := range entity.Slots {
			if _, bound := that.connections[slot]; bound {
				continue
			}

			that.connections[slot] = conn
			assigned = slot

			return current.WithConnected(slot), true
		}

		return current, false
	})

	if assigned == entity.EmptyCell {
		log.Info("session is full, connection refused")
		return entity.EmptyCell, apperror.ErrSessionFull
	}

	log.Info("player slot assigned", "slot", assigned)

	return assigned, nil
}

// ReleaseSlot unbinds the slot. Releasing a free slot does nothing.
func (that *SessionManager) ReleaseSlot(slot entity.Slot) {
	log := that.logger.With("method", "ReleaseSlot", "slot", slot)

	_, released := that.store.Update(func(current entity.GameState) (entity.GameState, bool) {
		that.connectionsMutex.Lock()
		defer that.connectionsMutex.Unlock()

		if _, bound := that.connections[slot]; !bound {
			return current, false
		}

		delete(that.connections, slot)

		return current.WithoutConnected(slot), true
	})

	if released {
		log.Info("player slot released")
	}
}

// Broadcast sends the snapshot to every bound connection. A failing connection is
// logged and skipped; its read loop is responsible for releasing the slot.
func (that *SessionManager) Broadcast(state entity.GameState) {
	log := that.logger.With("method", "Broadcast")

	payload, err := protocol.EncodeState(state)
	if err != nil {
		log.Error("failed to encode game state", "error", err)
		return
	}

	for slot, conn := range that.boundConnections() {
		if err = conn.Send(payload); err != nil {
			log.Warn("failed to send game state", "slot", slot, "connectionID", conn.ID(), "error", err)
		}
	}
}

// Connection returns the connection bound to the slot, if any.
func (that *SessionManager) Connection(slot entity.Slot) (Connection, bool) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	conn, ok := that.connections[slot]

	return conn, ok
}

func (that *SessionManager) boundConnections() map[entity.Slot]Connection {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	bound := make(map[entity.Slot]Connection, len(that.connections))
	for slot, conn := range that.connections {
		bound[slot] = conn
	}

	return bound
}

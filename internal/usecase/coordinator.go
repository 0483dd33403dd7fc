package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/protocol"
)

type roundRecorder interface {
	Record(ctx context.Context, result *entity.RoundResult) error
}

// Coordinator is the entry point used by transports. It owns one game session:
// the state store, the session manager and the game machine.
type Coordinator struct {
	logger   *slog.Logger
	recorder roundRecorder

	store    *Store
	sessions *SessionManager
	game     *GameMachine

	now func() time.Time
}

func NewCoordinator(logger *slog.Logger, resetDelay time.Duration, recorder roundRecorder) *Coordinator {
	store := NewStore(entity.NewGameState())

	return &Coordinator{
		logger:   logger.With("component", "coordinator"),
		recorder: recorder,

		store:    store,
		sessions: NewSessionManager(logger, store),
		game:     NewGameMachine(logger, store, resetDelay),

		now: time.Now,
	}
}

// Connect assigns a player slot to the connection or returns apperror.ErrSessionFull.
func (that *Coordinator) Connect(conn Connection) (entity.Slot, error) {
	return that.sessions.AssignSlot(conn)
}

func (that *Coordinator) Disconnect(slot entity.Slot) {
	that.sessions.ReleaseSlot(slot)
}

// HandleMessage decodes an inbound frame and submits it as a move. Undecodable frames
// become an off-board move, which the game machine rejects.
func (that *Coordinator) HandleMessage(ctx context.Context, slot entity.Slot, message []byte) bool {
	log := that.logger.With("method", "HandleMessage", "slot", slot)

	turn, err := protocol.DecodeCommand(message)
	if err != nil {
		log.Debug("ignoring malformed message", "error", err)
	}

	return that.SubmitMove(ctx, slot, turn.X, turn.Y)
}

func (that *Coordinator) SubmitMove(ctx context.Context, slot entity.Slot, x, y int) bool {
	state, accepted := that.game.SubmitMove(slot, x, y)
	if accepted && state.IsFinished() {
		that.recordRound(ctx, state)
	}

	return accepted
}

// State returns the current snapshot.
func (that *Coordinator) State() entity.GameState {
	return that.store.Snapshot()
}

// Close cancels the pending round reset.
func (that *Coordinator) Close() {
	that.game.Close()
}

func (that *Coordinator) recordRound(ctx context.Context, state entity.GameState) {
	log := that.logger.With("method", "recordRound")

	result := entity.NewRoundResult(uuid.NewString(), state, that.now())
	if err := that.recorder.Record(ctx, result); err != nil {
		log.Error("failed to record round", "roundID", result.ID, "error", err)
		return
	}

	log.Info("round recorded", "roundID", result.ID, "winner", result.Winner, "draw", result.Draw)
}

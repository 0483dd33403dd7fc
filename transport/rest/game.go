package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

const defaultRoundsLimit = 10

type stateProvider interface {
	State() entity.GameState
}

type roundHistory interface {
	GetScore(ctx context.Context) (*entity.Score, error)
	ListRecent(ctx context.Context, limit int64) ([]*entity.RoundResult, error)
}

type statsResponse struct {
	Score  *entity.Score          `json:"score"`
	Rounds []*entity.RoundResult `json:"rounds"`
}

type gameHandler struct {
	logger  *slog.Logger
	game    stateProvider
	history roundHistory
}

func newGameHandler(logger *slog.Logger, game stateProvider, history roundHistory) *gameHandler {
	return &gameHandler{
		logger:  logger,
		game:    game,
		history: history,
	}
}

// State - returns the current game snapshot.
func (that *gameHandler) State(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.State())
}

// Stats - returns the score and the latest rounds. Accepts an optional "limit" query parameter.
func (that *gameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Stats")

	limit := int64(defaultRoundsLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	score, err := that.history.GetScore(r.Context())
	if errors.Is(err, apperror.ErrHistoryDisabled) {
		http.Error(w, "Round history is disabled", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get score", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	rounds, err := that.history.ListRecent(r.Context(), limit)
	if err != nil {
		log.Error("failed to list rounds", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, statsResponse{
		Score:  score,
		Rounds: rounds,
	})
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		that.logger.Error("failed to marshal response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(payload); err != nil {
		that.logger.Warn("failed to write response", "error", err)
	}
}

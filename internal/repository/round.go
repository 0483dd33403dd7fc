package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

const (
	roundsKey = "rounds"
	scoreKey  = "score"

	scoreFieldDraw = "draw"

	DefaultHistorySize = 50
)

type RoundRepository interface {
	Record(ctx context.Context, result *entity.RoundResult) error
	GetScore(ctx context.Context) (*entity.Score, error)
	ListRecent(ctx context.Context, limit int64) ([]*entity.RoundResult, error)
}

type dbRound struct {
	client      *redis.Client
	historySize int64
}

type dbScore struct {
	X    int64 `redis:"X"`
	O    int64 `redis:"O"`
	Draw int64 `redis:"draw"`
}

func NewRoundRepository(client *redis.Client, historySize int64) RoundRepository {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	return &dbRound{
		client:      client,
		historySize: historySize,
	}
}

// Record - stores the round in the history list and bumps the score counter.
func (that *dbRound) Record(ctx context.Context, result *entity.RoundResult) error {
	roundJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	scoreField := string(result.Winner)
	if result.Draw {
		scoreField = scoreFieldDraw
	}

	pipe := that.client.TxPipeline()
	pipe.LPush(ctx, roundsKey, roundJSON)
	pipe.LTrim(ctx, roundsKey, 0, that.historySize-1)
	pipe.HIncrBy(ctx, scoreKey, scoreField, 1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}

	return nil
}

func (that *dbRound) GetScore(ctx context.Context) (*entity.Score, error) {
	var score dbScore
	if err := that.client.HGetAll(ctx, scoreKey).Scan(&score); err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return &entity.Score{
		X:    score.X,
		O:    score.O,
		Draw: score.Draw,
	}, nil
}

// ListRecent - returns the latest rounds, newest first.
func (that *dbRound) ListRecent(ctx context.Context, limit int64) ([]*entity.RoundResult, error) {
	if limit <= 0 || limit > that.historySize {
		limit = that.historySize
	}

	response, err := that.client.LRange(ctx, roundsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]*entity.RoundResult, 0, len(response))
	for _, item := range response {
		var round entity.RoundResult
		if err = json.Unmarshal([]byte(item), &round); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round: %w", err)
		}
		rounds = append(rounds, &round)
	}

	return rounds, nil
}

type nopRound struct{}

// NewNopRoundRepository - used when round history is disabled. Recording succeeds silently.
func NewNopRoundRepository() RoundRepository {
	return nopRound{}
}

func (nopRound) Record(context.Context, *entity.RoundResult) error {
	return nil
}

func (nopRound) GetScore(context.Context) (*entity.Score, error) {
	return nil, apperror.ErrHistoryDisabled
}

func (nopRound) ListRecent(context.Context, int64) ([]*entity.RoundResult, error) {
	return nil, apperror.ErrHistoryDisabled
}

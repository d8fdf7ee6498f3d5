package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

var ErrDifficultyStateNotFound = errors.New("difficulty state not found")

// DifficultyRepository persists each session's progression snapshot so a
// restarted process can restore the streak and level.
type DifficultyRepository interface {
	Save(ctx context.Context, sessionID string, state entity.DifficultyState) error
	Get(ctx context.Context, sessionID string) (entity.DifficultyState, error)
}

type dbDifficulty struct {
	client *redis.Client
}

func NewDifficultyRepository(client *redis.Client) DifficultyRepository {
	return &dbDifficulty{
		client: client,
	}
}

func (that *dbDifficulty) Save(ctx context.Context, sessionID string, state entity.DifficultyState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal difficulty state: %w", err)
	}

	stateKey := "session:" + sessionID + ":difficulty"
	if err = that.client.Set(ctx, stateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set difficulty state: %w", err)
	}

	return nil
}

func (that *dbDifficulty) Get(ctx context.Context, sessionID string) (entity.DifficultyState, error) {
	stateKey := "session:" + sessionID + ":difficulty"

	response, err := that.client.Get(ctx, stateKey).Result()
	if errors.Is(err, redis.Nil) {
		return entity.DifficultyState{}, ErrDifficultyStateNotFound
	}
	if err != nil {
		return entity.DifficultyState{}, fmt.Errorf("failed to get difficulty state: %w", err)
	}

	var state entity.DifficultyState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return entity.DifficultyState{}, fmt.Errorf("failed to unmarshal difficulty state: %w", err)
	}

	return state, nil
}

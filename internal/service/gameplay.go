package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/footygrid/footygrid-backend/internal/dataset"
	"github.com/footygrid/footygrid-backend/internal/engine"
	"github.com/footygrid/footygrid-backend/internal/entity"
	"github.com/footygrid/footygrid-backend/internal/repository"
)

// GamePlayService is the session-facing surface consumed by the
// transport layer.
type GamePlayService interface {
	StartGame(ctx context.Context, sessionID, difficulty string, forceReset bool) (*entity.Game, engine.Outcome, error)
	PlaceMark(ctx context.Context, sessionID, gameID string, row, col int) (engine.TurnResult, error)
	Guess(ctx context.Context, sessionID, gameID string, row, col int, name string) (engine.TurnResult, error)
	Skip(ctx context.Context, sessionID, gameID string) (engine.TurnResult, error)
	CategoryOptions(categoryType entity.CategoryType) ([]string, error)
	SearchPlayers(filters map[string]string) []entity.PlayerRecord
}

// session serializes access to one engine instance. The engine owns
// mutable cross-game state, so interleaving two requests of the same
// session would corrupt pool cursors and streak counters.
type session struct {
	mu     sync.Mutex
	engine *engine.Engine
}

type gamePlayService struct {
	logger *slog.Logger

	data           dataset.Accessor
	gameRepo       repository.GameRepository
	difficultyRepo repository.DifficultyRepository

	engineOpts    engine.Options
	opponentDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

func NewGamePlayService(
	logger *slog.Logger,
	data dataset.Accessor,
	gameRepo repository.GameRepository,
	difficultyRepo repository.DifficultyRepository,
	engineOpts engine.Options,
	opponentDelay time.Duration,
) GamePlayService {
	return &gamePlayService{
		logger:         logger.With("component", "gameplay"),
		data:           data,
		gameRepo:       gameRepo,
		difficultyRepo: difficultyRepo,
		engineOpts:     engineOpts,
		opponentDelay:  opponentDelay,
		sessions:       make(map[string]*session),
	}
}

// sessionFor returns the session's engine, creating it on first use and
// restoring any persisted difficulty progression.
func (that *gamePlayService) sessionFor(ctx context.Context, sessionID string) *session {
	that.mu.Lock()
	defer that.mu.Unlock()

	if existing, ok := that.sessions[sessionID]; ok {
		return existing
	}

	opts := that.engineOpts
	eng := engine.New(that.logger, that.data, opts)

	state, err := that.difficultyRepo.Get(ctx, sessionID)
	switch {
	case err == nil:
		eng.RestoreDifficultyState(state)
	case errors.Is(err, repository.ErrDifficultyStateNotFound):
		// fresh session, nothing to restore
	default:
		that.logger.Error("failed to restore difficulty state", "session_id", sessionID, "error", err)
	}

	created := &session{engine: eng}
	that.sessions[sessionID] = created

	return created
}

func (that *gamePlayService) StartGame(ctx context.Context, sessionID, difficulty string, forceReset bool) (*entity.Game, engine.Outcome, error) {
	sess := that.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	game, outcome, err := sess.engine.GenerateGame(difficulty, forceReset)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, "", fmt.Errorf("failed to save game: %w", err)
	}
	that.saveDifficulty(ctx, sessionID, sess)

	return game, outcome, nil
}

func (that *gamePlayService) PlaceMark(ctx context.Context, sessionID, gameID string, row, col int) (engine.TurnResult, error) {
	sess := that.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return engine.TurnResult{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	result := sess.engine.PlaceUserMark(game, row, col)

	return that.settle(ctx, sessionID, sess, result)
}

func (that *gamePlayService) Guess(ctx context.Context, sessionID, gameID string, row, col int, name string) (engine.TurnResult, error) {
	sess := that.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return engine.TurnResult{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	result := sess.engine.Guess(game, row, col, name)

	return that.settle(ctx, sessionID, sess, result)
}

// Skip hands the turn over and immediately forces the opponent's move.
func (that *gamePlayService) Skip(ctx context.Context, sessionID, gameID string) (engine.TurnResult, error) {
	sess := that.sessionFor(ctx, sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return engine.TurnResult{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	result := sess.engine.Skip(game)

	return that.settle(ctx, sessionID, sess, result)
}

// CategoryOptions depends only on the immutable dataset, not on any
// session.
func (that *gamePlayService) CategoryOptions(categoryType entity.CategoryType) ([]string, error) {
	return engine.CategoryOptions(that.data, categoryType)
}

// SearchPlayers filters the dataset by case-insensitive substring match
// per field, AND-combined.
func (that *gamePlayService) SearchPlayers(filters map[string]string) []entity.PlayerRecord {
	return that.data.Search(filters)
}

// settle lets the opponent reply to a successful non-terminal user move,
// applying the cosmetic delay, then persists the final state.
func (that *gamePlayService) settle(ctx context.Context, sessionID string, sess *session, result engine.TurnResult) (engine.TurnResult, error) {
	if !result.Success {
		return result, nil
	}

	game := result.Game
	if !game.Completed && game.Turn == entity.TurnOpponent {
		if err := that.pause(ctx); err != nil {
			return engine.TurnResult{}, err
		}

		reply := sess.engine.PlaceOpponentMark(game)
		if reply.Success {
			result = reply
			game = reply.Game
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return engine.TurnResult{}, fmt.Errorf("failed to save game: %w", err)
	}
	if game.Completed {
		that.saveDifficulty(ctx, sessionID, sess)
	}

	return result, nil
}

// pause waits the configured opponent delay, giving up early when the
// caller cancels.
func (that *gamePlayService) pause(ctx context.Context) error {
	if that.opponentDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.opponentDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("opponent reply canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (that *gamePlayService) saveDifficulty(ctx context.Context, sessionID string, sess *session) {
	if err := that.difficultyRepo.Save(ctx, sessionID, sess.engine.DifficultyState()); err != nil {
		that.logger.Error("failed to save difficulty state", "session_id", sessionID, "error", err)
	}
}

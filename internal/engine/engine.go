// Package engine generates category tic-tac-toe boards from a player
// dataset and adjudicates games on them. One Engine serves exactly one
// logical player session: it owns mutable cross-game state (shuffled
// pools, difficulty streaks, its random source) and does no locking of
// its own.
package engine

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/footygrid/footygrid-backend/internal/apperror"
	"github.com/footygrid/footygrid-backend/internal/dataset"
	"github.com/footygrid/footygrid-backend/internal/entity"
)

// MinDatasetSize is the hard floor below which generation cannot run.
const MinDatasetSize = 9

const (
	defaultAttempts      = 200
	defaultRetryAttempts = 50
)

// Outcome classifies how generation went.
type Outcome string

const (
	// OutcomeFound - randomized search produced the layout.
	OutcomeFound Outcome = "found"
	// OutcomeFallback - search exhausted its budget and the deterministic
	// layout was used.
	OutcomeFallback Outcome = "fallback"
	// OutcomeDegraded - at least one interior cell has no occupant.
	OutcomeDegraded Outcome = "degraded"
)

// Options tune the engine. Zero values take defaults; Seed 0 seeds from
// the clock.
type Options struct {
	Attempts          int
	RetryAttempts     int
	CenterProbability float64
	CornerProbability float64
	Seed              int64
}

func (that Options) withDefaults() Options {
	if that.Attempts == 0 {
		that.Attempts = defaultAttempts
	}
	if that.RetryAttempts == 0 {
		that.RetryAttempts = defaultRetryAttempts
	}
	if that.CenterProbability == 0 {
		that.CenterProbability = defaultCenterProbability
	}
	if that.CornerProbability == 0 {
		that.CornerProbability = defaultCornerProbability
	}
	if that.Seed == 0 {
		that.Seed = time.Now().UnixNano()
	}
	return that
}

// Engine is the puzzle-generation and game-state core for one session.
type Engine struct {
	logger *slog.Logger
	data   dataset.Accessor

	rng      *rand.Rand
	selector *categorySelector
	builder  *boardBuilder
	matcher  *guessMatcher
	opponent *opponentStrategy
	tracker  *progressTracker
}

func New(logger *slog.Logger, data dataset.Accessor, opts Options) *Engine {
	opts = opts.withDefaults()

	rng := rand.New(rand.NewSource(opts.Seed)) //nolint: gosec // game randomness, not crypto
	records := data.GetAll()

	return &Engine{
		logger:   logger.With("component", "engine"),
		data:     data,
		rng:      rng,
		selector: newCategorySelector(rng, records, opts.Attempts, opts.RetryAttempts),
		builder:  newBoardBuilder(rng, records, newPlayerPool(rng, records)),
		matcher:  newGuessMatcher(records),
		opponent: newOpponentStrategy(rng, opts.CenterProbability, opts.CornerProbability),
		tracker:  newProgressTracker(),
	}
}

// GenerateGame builds a fresh game. An empty difficulty uses the
// session's current progression level; forceReset restarts progression
// at easy first.
func (that *Engine) GenerateGame(difficulty string, forceReset bool) (*entity.Game, Outcome, error) {
	if len(that.data.GetAll()) < MinDatasetSize {
		return nil, "", apperror.ErrInsufficientDataset
	}

	if forceReset {
		that.tracker.Reset()
	}
	switch difficulty {
	case "":
		difficulty = that.tracker.Difficulty()
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		return nil, "", apperror.ErrInvalidDifficulty
	}

	layout, usedFallback := that.selector.Select(difficulty)
	grid, degraded := that.builder.Build(&layout, difficulty)

	outcome := OutcomeFound
	switch {
	case degraded:
		outcome = OutcomeDegraded
	case usedFallback:
		outcome = OutcomeFallback
	}

	game := &entity.Game{
		ID:         uuid.NewString(),
		Grid:       grid,
		RowTypes:   layout.rowTypes,
		RowValues:  layout.rowValues,
		ColTypes:   layout.colTypes,
		ColValues:  layout.colValues,
		Turn:       entity.TurnUser,
		Difficulty: difficulty,
		Progress:   that.tracker.Progress(),
		CreatedAt:  time.Now().UTC(),
	}

	that.logger.Debug("generated game",
		"game_id", game.ID,
		"difficulty", difficulty,
		"outcome", string(outcome),
	)

	return game, outcome, nil
}

// CategoryOptions returns the sorted distinct dataset values for a type.
// It is a package function because the answer depends only on the
// dataset, never on session state.
func CategoryOptions(data dataset.Accessor, categoryType entity.CategoryType) ([]string, error) {
	if !categoryType.IsValid() {
		return nil, apperror.ErrInvalidCategory
	}
	return dataset.CategoryValues(data, categoryType), nil
}

func (that *Engine) CategoryOptions(categoryType entity.CategoryType) ([]string, error) {
	return CategoryOptions(that.data, categoryType)
}

// DifficultyState exposes the progression snapshot for persistence.
func (that *Engine) DifficultyState() entity.DifficultyState {
	return that.tracker.Snapshot()
}

// RestoreDifficultyState replaces the progression state, typically with a
// snapshot persisted by a previous process.
func (that *Engine) RestoreDifficultyState(state entity.DifficultyState) {
	that.tracker.Restore(state)
}

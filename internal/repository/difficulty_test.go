package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footygrid/footygrid-backend/internal/entity"
	"github.com/footygrid/footygrid-backend/testing/suite"
)

func TestDifficultyRepository_SaveGet(t *testing.T) {
	t.Run("round-trips a snapshot", func(t *testing.T) {
		ctx, st := suite.New(t)

		difficultyRepo := NewDifficultyRepository(st.Storage)

		// Given: a mid-streak snapshot
		state := entity.DifficultyState{
			Difficulty:  entity.DifficultyMedium,
			WinCounter:  3,
			LastOutcome: entity.OutcomeWin,
		}

		// When: the state is saved and read back
		require.NoError(t, difficultyRepo.Save(ctx, "session-1", state))
		restored, err := difficultyRepo.Get(ctx, "session-1")

		// Then: the snapshot is identical
		require.NoError(t, err)
		require.Equal(t, state, restored)
	})

	t.Run("unknown sessions have no state", func(t *testing.T) {
		ctx, st := suite.New(t)

		difficultyRepo := NewDifficultyRepository(st.Storage)

		_, err := difficultyRepo.Get(ctx, "nobody")
		require.ErrorIs(t, err, ErrDifficultyStateNotFound)
	})
}

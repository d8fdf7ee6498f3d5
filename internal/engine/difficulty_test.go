package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

func TestProgressTracker_RecordOutcome(t *testing.T) {
	t.Run("five wins advance easy to medium", func(t *testing.T) {
		tracker := newProgressTracker()

		for i := 0; i < entity.WinsPerLevel-1; i++ {
			require.Empty(t, tracker.RecordOutcome(entity.OutcomeWin))
			require.Equal(t, entity.DifficultyEasy, tracker.Difficulty())
		}
		assert.Equal(t, 80, tracker.Progress())

		previous := tracker.RecordOutcome(entity.OutcomeWin)
		require.Equal(t, entity.DifficultyEasy, previous)
		assert.Equal(t, entity.DifficultyMedium, tracker.Difficulty())
		assert.Equal(t, 0, tracker.Progress())
	})

	t.Run("a loss resets the streak without regressing", func(t *testing.T) {
		tracker := newProgressTracker()
		tracker.Restore(entity.DifficultyState{Difficulty: entity.DifficultyMedium, WinCounter: 4})

		require.Empty(t, tracker.RecordOutcome(entity.OutcomeLoss))
		assert.Equal(t, entity.DifficultyMedium, tracker.Difficulty())
		assert.Equal(t, 0, tracker.Progress())
	})

	t.Run("a draw also resets the streak", func(t *testing.T) {
		tracker := newProgressTracker()
		tracker.RecordOutcome(entity.OutcomeWin)
		tracker.RecordOutcome(entity.OutcomeDraw)

		assert.Equal(t, 0, tracker.Progress())
		assert.Equal(t, entity.DifficultyEasy, tracker.Difficulty())
	})

	t.Run("hard is terminal and reports full progress", func(t *testing.T) {
		tracker := newProgressTracker()
		tracker.Restore(entity.DifficultyState{Difficulty: entity.DifficultyHard, WinCounter: 4})

		require.Empty(t, tracker.RecordOutcome(entity.OutcomeWin))
		require.Empty(t, tracker.RecordOutcome(entity.OutcomeWin))
		assert.Equal(t, entity.DifficultyHard, tracker.Difficulty())
		assert.Equal(t, 100, tracker.Progress())
	})
}

func TestProgressTracker_SnapshotRestore(t *testing.T) {
	// Given: a tracker mid-streak
	tracker := newProgressTracker()
	tracker.RecordOutcome(entity.OutcomeWin)
	tracker.RecordOutcome(entity.OutcomeWin)

	// When: the snapshot round-trips through a fresh tracker
	snapshot := tracker.Snapshot()
	restored := newProgressTracker()
	restored.Restore(snapshot)

	// Then: progression behavior continues exactly where it left off
	require.Equal(t, tracker.Difficulty(), restored.Difficulty())
	require.Equal(t, tracker.Progress(), restored.Progress())

	for i := 0; i < 3; i++ {
		tracker.RecordOutcome(entity.OutcomeWin)
		restored.RecordOutcome(entity.OutcomeWin)
	}
	assert.Equal(t, tracker.Difficulty(), restored.Difficulty())
	assert.Equal(t, entity.DifficultyMedium, restored.Difficulty())
}

func TestProgressTracker_Reset(t *testing.T) {
	tracker := newProgressTracker()
	tracker.Restore(entity.DifficultyState{Difficulty: entity.DifficultyHard, WinCounter: 3, LastOutcome: entity.OutcomeWin})

	tracker.Reset()

	assert.Equal(t, entity.DifficultyEasy, tracker.Difficulty())
	assert.Equal(t, 0, tracker.Progress())
}

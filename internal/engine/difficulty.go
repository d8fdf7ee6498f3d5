package engine

import "github.com/footygrid/footygrid-backend/internal/entity"

// progressTracker is the cross-game difficulty progression machine:
// five consecutive user wins at a level advance it one tier; any loss or
// draw resets the streak. Hard is terminal.
type progressTracker struct {
	state entity.DifficultyState
}

func newProgressTracker() *progressTracker {
	return &progressTracker{state: entity.NewDifficultyState()}
}

// RecordOutcome folds one finished game into the streak. Returns the
// previous difficulty when the outcome caused a level transition, "" otherwise.
func (that *progressTracker) RecordOutcome(outcome string) string {
	that.state.LastOutcome = outcome

	if outcome != entity.OutcomeWin {
		that.state.WinCounter = 0
		return ""
	}

	that.state.WinCounter++
	if that.state.WinCounter < entity.WinsPerLevel {
		return ""
	}

	previous := that.state.Difficulty
	switch that.state.Difficulty {
	case entity.DifficultyEasy:
		that.state.Difficulty = entity.DifficultyMedium
	case entity.DifficultyMedium:
		that.state.Difficulty = entity.DifficultyHard
	default:
		// already at hard; keep the streak capped at the threshold
		that.state.WinCounter = entity.WinsPerLevel
		return ""
	}
	that.state.WinCounter = 0

	return previous
}

func (that *progressTracker) Difficulty() string {
	return that.state.Difficulty
}

func (that *progressTracker) Progress() int {
	return that.state.Progress()
}

// Reset returns the progression to a fresh easy state.
func (that *progressTracker) Reset() {
	that.state = entity.NewDifficultyState()
}

// Snapshot and Restore exist so a host can persist progression across
// process boundaries; Restore replaces the whole state atomically.
func (that *progressTracker) Snapshot() entity.DifficultyState {
	return that.state
}

func (that *progressTracker) Restore(state entity.DifficultyState) {
	if state.Difficulty == "" {
		state.Difficulty = entity.DifficultyEasy
	}
	that.state = state
}

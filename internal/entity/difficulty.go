package entity

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
	OutcomeNone = ""
)

// WinsPerLevel is the streak of user wins that advances a difficulty.
const WinsPerLevel = 5

// DifficultyState is the persistable snapshot of the cross-game
// progression machine.
type DifficultyState struct {
	Difficulty  string `json:"difficulty"`
	WinCounter  int    `json:"win_counter"`
	LastOutcome string `json:"last_outcome,omitempty"`
}

// NewDifficultyState starts a fresh progression at easy.
func NewDifficultyState() DifficultyState {
	return DifficultyState{Difficulty: DifficultyEasy}
}

// Progress - percentage toward the next level; hard is terminal and
// always reports 100.
func (that *DifficultyState) Progress() int {
	if that.Difficulty == DifficultyHard {
		return 100
	}
	progress := that.WinCounter * 100 / WinsPerLevel
	if progress > 100 {
		return 100
	}
	return progress
}

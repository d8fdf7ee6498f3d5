package engine

import (
	"math/rand"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

const (
	centerIndex = 4

	defaultCenterProbability = 0.70
	defaultCornerProbability = 0.60
)

var cornerIndexes = []int{0, 2, 6, 8}

// opponentStrategy picks the opposing mark's cell. It is deliberately
// imperfect: center and corner grabs are probabilistic and blocking the
// user is a last resort, so a skilled user can still win.
type opponentStrategy struct {
	rng *rand.Rand

	centerProbability float64
	cornerProbability float64
}

func newOpponentStrategy(rng *rand.Rand, centerProbability, cornerProbability float64) *opponentStrategy {
	return &opponentStrategy{
		rng:               rng,
		centerProbability: centerProbability,
		cornerProbability: cornerProbability,
	}
}

// ChooseCell returns the interior index (0..8) to mark, or false when no
// unmarked cell remains.
func (that *opponentStrategy) ChooseCell(game *entity.Game) (int, bool) {
	unmarked := unmarkedCells(game)
	if len(unmarked) == 0 {
		return 0, false
	}

	// Prefer cells whose occupant does not satisfy both categories: the
	// opponent occupying an actually-correct answer looks too convenient.
	candidates := make([]int, 0, len(unmarked))
	for _, index := range unmarked {
		if !cellSatisfied(game, index) {
			candidates = append(candidates, index)
		}
	}
	if len(candidates) == 0 {
		candidates = unmarked
	}

	for _, index := range candidates {
		if completesLine(game, index, entity.MarkOpponent) {
			return index, true
		}
	}

	hasCenter := containsIndex(candidates, centerIndex)
	if hasCenter && that.rng.Float64() < that.centerProbability {
		return centerIndex, true
	}

	corners := make([]int, 0, len(cornerIndexes))
	for _, corner := range cornerIndexes {
		if containsIndex(candidates, corner) {
			corners = append(corners, corner)
		}
	}
	if len(corners) > 0 && that.rng.Float64() < that.cornerProbability {
		return corners[that.rng.Intn(len(corners))], true
	}

	if !hasCenter && len(corners) == 0 {
		for _, index := range unmarked {
			if completesLine(game, index, entity.MarkUser) {
				return index, true
			}
		}
	}

	return candidates[that.rng.Intn(len(candidates))], true
}

func unmarkedCells(game *entity.Game) []int {
	var unmarked []int
	for i := 0; i < 9; i++ {
		if game.InteriorCell(i).Mark == entity.MarkNone {
			unmarked = append(unmarked, i)
		}
	}
	return unmarked
}

// cellSatisfied reports whether the cell's occupant matches both its row
// and column category. Empty cells are never satisfied.
func cellSatisfied(game *entity.Game, index int) bool {
	cell := game.InteriorCell(index)
	if cell.Player == nil {
		return false
	}
	constraint := cellConstraint{
		rowType:  game.RowTypes[index/3],
		rowValue: game.RowValues[index/3],
		colType:  game.ColTypes[index%3],
		colValue: game.ColValues[index%3],
	}
	return constraint.matches(cell.Player)
}

// completesLine reports whether marking the index would finish
// three-in-a-row for the given mark.
func completesLine(game *entity.Game, index int, mark string) bool {
	for _, combo := range entity.WinCombos {
		if !containsIndex(combo[:], index) {
			continue
		}
		complete := true
		for _, i := range combo {
			if i == index {
				continue
			}
			if game.InteriorCell(i).Mark != mark {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

func containsIndex(indexes []int, want int) bool {
	for _, index := range indexes {
		if index == want {
			return true
		}
	}
	return false
}

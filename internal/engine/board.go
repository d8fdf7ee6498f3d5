package engine

import (
	"math/rand"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// boardBuilder assembles the 4x4 grid from a category layout and the
// tiered player pool.
type boardBuilder struct {
	rng     *rand.Rand
	records []entity.PlayerRecord
	pool    *playerPool
}

func newBoardBuilder(rng *rand.Rand, records []entity.PlayerRecord, pool *playerPool) *boardBuilder {
	return &boardBuilder{rng: rng, records: records, pool: pool}
}

// tierPlan assigns a target tier to each of the nine interior cells in
// row-major order, shuffled so tiers are not clustered by row. The plan
// realizes the per-difficulty minimum quotas exactly.
func (that *boardBuilder) tierPlan(difficulty string) [9]int {
	var plan [9]int
	switch difficulty {
	case entity.DifficultyEasy:
		for i := range plan {
			plan[i] = entity.TierFamous
		}
	case entity.DifficultyMedium:
		plan = [9]int{1, 1, 1, 1, 1, 2, 2, 2, 2}
	default:
		plan = [9]int{1, 1, 1, 2, 2, 2, 3, 3, 3}
	}

	that.rng.Shuffle(len(plan), func(i, j int) {
		plan[i], plan[j] = plan[j], plan[i]
	})

	return plan
}

// Build populates the grid. Returns the grid and whether any interior
// cell had to be left without an occupant.
func (that *boardBuilder) Build(layout *categoryLayout, difficulty string) ([entity.GridSize][entity.GridSize]entity.Cell, bool) {
	var grid [entity.GridSize][entity.GridSize]entity.Cell

	for i := 0; i < 3; i++ {
		grid[0][i+1] = entity.Cell{Header: true, CategoryType: layout.colTypes[i], CategoryValue: layout.colValues[i]}
		grid[i+1][0] = entity.Cell{Header: true, CategoryType: layout.rowTypes[i], CategoryValue: layout.rowValues[i]}
	}

	plan := that.tierPlan(difficulty)
	used := make(map[string]struct{}, 9)

	that.pool.BeginCycle()

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			constraint := layout.constraintAt(row, col)
			record := that.pick(constraint, plan[row*3+col], difficulty, used)
			if record != nil {
				used[record.Key()] = struct{}{}
			}
			grid[row+1][col+1] = entity.Cell{Player: record}
		}
	}

	degraded := that.repair(&grid, layout, difficulty, used)

	return grid, degraded
}

// pick draws from the target tier's pool, degrading to the first untaken
// match in dataset order. Easy boards never degrade past tier one; the
// cell stays empty instead.
func (that *boardBuilder) pick(constraint cellConstraint, tier int, difficulty string, used map[string]struct{}) *entity.PlayerRecord {
	if record, ok := that.pool.Take(constraint, tier, used); ok {
		return record
	}

	for i := range that.records {
		record := &that.records[i]
		if _, taken := used[record.Key()]; taken {
			continue
		}
		if difficulty == entity.DifficultyEasy && record.EffectiveTier() != entity.TierFamous {
			continue
		}
		if constraint.matches(record) {
			return record
		}
	}

	return nil
}

// repair attempts to fill empty cells by a single reassignment: if the
// only matching records are already placed elsewhere, and one of those
// cells has an unused alternative, the record moves here and the other
// cell takes the alternative. Returns whether any cell remains empty.
func (that *boardBuilder) repair(grid *[entity.GridSize][entity.GridSize]entity.Cell, layout *categoryLayout, difficulty string, used map[string]struct{}) bool {
	degraded := false

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := &grid[row+1][col+1]
			if cell.Player != nil {
				continue
			}
			if !that.reassign(grid, layout, difficulty, used, row, col) {
				degraded = true
			}
		}
	}

	return degraded
}

func (that *boardBuilder) reassign(grid *[entity.GridSize][entity.GridSize]entity.Cell, layout *categoryLayout, difficulty string, used map[string]struct{}, row, col int) bool {
	constraint := layout.constraintAt(row, col)

	for otherRow := 0; otherRow < 3; otherRow++ {
		for otherCol := 0; otherCol < 3; otherCol++ {
			if otherRow == row && otherCol == col {
				continue
			}

			other := &grid[otherRow+1][otherCol+1]
			if other.Player == nil || !constraint.matches(other.Player) {
				continue
			}
			if difficulty == entity.DifficultyEasy && other.Player.EffectiveTier() != entity.TierFamous {
				continue
			}

			alternative := that.pick(layout.constraintAt(otherRow, otherCol), other.Player.EffectiveTier(), difficulty, used)
			if alternative == nil {
				continue
			}

			grid[row+1][col+1].Player = other.Player
			other.Player = alternative
			used[alternative.Key()] = struct{}{}

			return true
		}
	}

	return false
}

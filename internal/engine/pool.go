package engine

import (
	"math/rand"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// cellConstraint is the pair of category requirements one interior cell
// imposes on its occupant.
type cellConstraint struct {
	rowType  entity.CategoryType
	rowValue string
	colType  entity.CategoryType
	colValue string
}

func (that *cellConstraint) matches(record *entity.PlayerRecord) bool {
	return that.rowType.Matches(record, that.rowValue) && that.colType.Matches(record, that.colValue)
}

// playerPool keeps one shuffled pool per priority tier plus an
// unrestricted pool, each with its own forward-scanning cursor. Cursors
// wrap; a pool reshuffles after a full wrap yields nothing, and all
// pools reshuffle when a new generation cycle begins.
type playerPool struct {
	rng     *rand.Rand
	pools   map[int][]entity.PlayerRecord
	cursors map[int]int
}

// poolAll keys the unrestricted pool.
const poolAll = 0

func newPlayerPool(rng *rand.Rand, records []entity.PlayerRecord) *playerPool {
	pool := &playerPool{
		rng:     rng,
		pools:   make(map[int][]entity.PlayerRecord),
		cursors: make(map[int]int),
	}

	for _, record := range records {
		tier := record.EffectiveTier()
		pool.pools[tier] = append(pool.pools[tier], record)
		pool.pools[poolAll] = append(pool.pools[poolAll], record)
	}
	for tier := range pool.pools {
		pool.shuffle(tier)
	}

	return pool
}

// BeginCycle reshuffles every pool ahead of a fresh board generation.
func (that *playerPool) BeginCycle() {
	for tier := range that.pools {
		that.shuffle(tier)
		that.cursors[tier] = 0
	}
}

func (that *playerPool) shuffle(tier int) {
	pool := that.pools[tier]
	that.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// Take returns a record from the given tier's pool that satisfies the
// cell constraint and is not in used, advancing the cursor past it. A
// full fruitless wrap reshuffles the pool and rescans once.
func (that *playerPool) Take(constraint cellConstraint, tier int, used map[string]struct{}) (*entity.PlayerRecord, bool) {
	if record, ok := that.scan(constraint, tier, used); ok {
		return record, true
	}

	that.shuffle(tier)
	that.cursors[tier] = 0

	return that.scan(constraint, tier, used)
}

func (that *playerPool) scan(constraint cellConstraint, tier int, used map[string]struct{}) (*entity.PlayerRecord, bool) {
	pool := that.pools[tier]
	if len(pool) == 0 {
		return nil, false
	}

	start := that.cursors[tier] % len(pool)
	for offset := range pool {
		i := (start + offset) % len(pool)
		if _, taken := used[pool[i].Key()]; taken {
			continue
		}
		if constraint.matches(&pool[i]) {
			that.cursors[tier] = (i + 1) % len(pool)
			// copy: later reshuffles move records within the pool slice
			record := pool[i]
			return &record, true
		}
	}

	return nil, false
}

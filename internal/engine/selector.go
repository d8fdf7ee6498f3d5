package engine

import (
	"math/rand"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// categoryLayout is the selector's output: three (type, value) pairs per
// axis, already validated against the board invariants.
type categoryLayout struct {
	rowTypes  [3]entity.CategoryType
	rowValues [3]string
	colTypes  [3]entity.CategoryType
	colValues [3]string
}

func (that *categoryLayout) constraintAt(row, col int) cellConstraint {
	return cellConstraint{
		rowType:  that.rowTypes[row],
		rowValue: that.rowValues[row],
		colType:  that.colTypes[col],
		colValue: that.colValues[col],
	}
}

// Match-count thresholds for value sampling. Values matching at least
// easyMatchCount records are sampled first; the sampler falls back one
// threshold at a time.
const (
	easyMatchCount   = 5
	mediumMatchCount = 3
)

// fallbackRowTypes/fallbackColTypes form the deterministic last-resort
// layout used when randomized search exhausts its attempt budget.
var (
	fallbackRowTypes = [3]entity.CategoryType{entity.CategoryCountry, entity.CategoryPosition, entity.CategoryPosition}
	fallbackColTypes = [3]entity.CategoryType{entity.CategoryLeague, entity.CategoryTeam, entity.CategoryTeam}
)

// categorySelector chooses a coherent set of row/column categories via
// bounded generate-and-test.
type categorySelector struct {
	rng     *rand.Rand
	records []entity.PlayerRecord

	valuesByType map[entity.CategoryType][]string
	matchCounts  map[entity.CategoryType]map[string]int

	attempts      int
	retryAttempts int
}

func newCategorySelector(rng *rand.Rand, records []entity.PlayerRecord, attempts, retryAttempts int) *categorySelector {
	selector := &categorySelector{
		rng:           rng,
		records:       records,
		valuesByType:  make(map[entity.CategoryType][]string),
		matchCounts:   make(map[entity.CategoryType]map[string]int),
		attempts:      attempts,
		retryAttempts: retryAttempts,
	}

	for _, categoryType := range entity.AllCategoryTypes {
		counts := make(map[string]int)
		var values []string
		for i := range records {
			record := &records[i]
			for _, value := range categoryValues(categoryType, record) {
				if counts[value] == 0 {
					values = append(values, value)
				}
				counts[value]++
			}
		}
		selector.valuesByType[categoryType] = values
		selector.matchCounts[categoryType] = counts
	}

	return selector
}

// categoryValues lists the values a single record contributes for a type.
// Positions contribute each role; other types contribute one value.
func categoryValues(categoryType entity.CategoryType, record *entity.PlayerRecord) []string {
	if categoryType == entity.CategoryPosition {
		return record.Positions()
	}
	if value := categoryType.ValueOf(record); value != "" {
		return []string{value}
	}
	return nil
}

// Select runs the full search: the main biased pass, a simplified retry
// pass, a deterministic exhaustive pass, then the fallback layout. The
// second return value reports whether a deterministic path was used.
func (that *categorySelector) Select(difficulty string) (categoryLayout, bool) {
	ceiling := tierCeiling(difficulty)

	for attempt := 0; attempt < that.attempts; attempt++ {
		if layout, ok := that.attemptLayout(ceiling, true); ok {
			return layout, false
		}
	}
	for attempt := 0; attempt < that.retryAttempts; attempt++ {
		if layout, ok := that.attemptLayout(ceiling, false); ok {
			return layout, false
		}
	}

	if layout, ok := that.exhaustiveLayout(ceiling); ok {
		return layout, true
	}

	return that.fallbackLayout(ceiling), true
}

func tierCeiling(difficulty string) int {
	switch difficulty {
	case entity.DifficultyEasy:
		return entity.TierFamous
	case entity.DifficultyMedium:
		return entity.TierMedium
	default:
		return entity.TierObscure
	}
}

// attemptLayout builds one candidate layout and validates it, reporting
// failure as soon as any rule breaks so the caller can re-roll.
func (that *categorySelector) attemptLayout(ceiling int, biased bool) (categoryLayout, bool) {
	rowPool, colPool, ok := that.partitionTypes()
	if !ok {
		return categoryLayout{}, false
	}

	var layout categoryLayout
	taken := make(map[string]struct{}, 6)

	for i := 0; i < 3; i++ {
		categoryType := rowPool[that.rng.Intn(len(rowPool))]
		value, ok := that.sampleValue(categoryType, biased, taken)
		if !ok {
			return categoryLayout{}, false
		}
		layout.rowTypes[i] = categoryType
		layout.rowValues[i] = value
		taken[value] = struct{}{}
	}
	for i := 0; i < 3; i++ {
		categoryType := colPool[that.rng.Intn(len(colPool))]
		value, ok := that.sampleValue(categoryType, biased, taken)
		if !ok {
			return categoryLayout{}, false
		}
		layout.colTypes[i] = categoryType
		layout.colValues[i] = value
		taken[value] = struct{}{}
	}

	if !that.validateLayout(&layout, ceiling) {
		return categoryLayout{}, false
	}

	return layout, true
}

// partitionTypes reshuffles the five category types and splits them at a
// random point into a row pool and a column pool. Rejects splits that put
// Team and League on opposite axes.
func (that *categorySelector) partitionTypes() (rowPool, colPool []entity.CategoryType, ok bool) {
	types := make([]entity.CategoryType, len(entity.AllCategoryTypes))
	copy(types, entity.AllCategoryTypes)
	that.rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	split := 1 + that.rng.Intn(len(types)-1)
	rowPool, colPool = types[:split], types[split:]

	if containsType(rowPool, entity.CategoryTeam) && containsType(colPool, entity.CategoryLeague) {
		return nil, nil, false
	}
	if containsType(rowPool, entity.CategoryLeague) && containsType(colPool, entity.CategoryTeam) {
		return nil, nil, false
	}

	return rowPool, colPool, true
}

func containsType(pool []entity.CategoryType, want entity.CategoryType) bool {
	for _, categoryType := range pool {
		if categoryType == want {
			return true
		}
	}
	return false
}

// sampleValue picks a not-yet-taken value for the type. The biased pass
// prefers values with many matching records, stepping down one
// match-count threshold at a time; the simplified pass samples uniformly.
func (that *categorySelector) sampleValue(categoryType entity.CategoryType, biased bool, taken map[string]struct{}) (string, bool) {
	available := make([]string, 0, len(that.valuesByType[categoryType]))
	for _, value := range that.valuesByType[categoryType] {
		if _, dup := taken[value]; !dup {
			available = append(available, value)
		}
	}
	if len(available) == 0 {
		return "", false
	}

	if !biased {
		return available[that.rng.Intn(len(available))], true
	}

	counts := that.matchCounts[categoryType]
	for _, threshold := range []int{easyMatchCount, mediumMatchCount, 1} {
		tier := make([]string, 0, len(available))
		for _, value := range available {
			if counts[value] >= threshold {
				tier = append(tier, value)
			}
		}
		if len(tier) > 0 {
			return tier[that.rng.Intn(len(tier))], true
		}
	}

	return "", false
}

// validateLayout enforces the board invariants: the four required types
// all present, values pairwise distinct, no trivial cell, and every
// (row, col) pair matchable by a record within the difficulty's tier
// ceiling.
func (that *categorySelector) validateLayout(layout *categoryLayout, ceiling int) bool {
	present := make(map[entity.CategoryType]struct{}, 5)
	for _, categoryType := range layout.rowTypes {
		present[categoryType] = struct{}{}
	}
	for _, categoryType := range layout.colTypes {
		present[categoryType] = struct{}{}
	}
	for _, required := range entity.RequiredCategoryTypes {
		if _, ok := present[required]; !ok {
			return false
		}
	}

	values := make(map[string]struct{}, 6)
	for _, value := range layout.rowValues {
		values[value] = struct{}{}
	}
	for _, value := range layout.colValues {
		values[value] = struct{}{}
	}
	if len(values) != 6 {
		return false
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			constraint := layout.constraintAt(row, col)
			if constraint.rowType == constraint.colType && constraint.rowValue == constraint.colValue {
				return false
			}
			if !that.pairMatchable(constraint, ceiling) {
				return false
			}
		}
	}

	return true
}

func (that *categorySelector) pairMatchable(constraint cellConstraint, ceiling int) bool {
	for i := range that.records {
		record := &that.records[i]
		if record.EffectiveTier() <= ceiling && constraint.matches(record) {
			return true
		}
	}
	return false
}

// exhaustiveBudget bounds the value assignments the deterministic pass
// may try across all type layouts.
const exhaustiveBudget = 20000

// slotOrder interleaves the first row with the columns so every column
// value is checked against a row value as soon as it is placed.
var slotOrder = [6][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {0, 1}, {0, 2}}

// exhaustiveLayout enumerates type layouts in a fixed order and
// backtracks over value assignments in dataset order. Sparse datasets
// can have so few valid layouts that randomized sampling misses them
// within its attempt budget; this pass finds them deterministically.
func (that *categorySelector) exhaustiveLayout(ceiling int) (categoryLayout, bool) {
	budget := exhaustiveBudget

	for _, rowTypes := range typeTriples() {
		for _, colTypes := range typeTriples() {
			if !typeLayoutValid(rowTypes, colTypes) {
				continue
			}

			layout := categoryLayout{rowTypes: rowTypes, colTypes: colTypes}
			if that.assignSlot(&layout, 0, make(map[string]struct{}, 6), ceiling, &budget) {
				return layout, true
			}
			if budget <= 0 {
				return categoryLayout{}, false
			}
		}
	}

	return categoryLayout{}, false
}

func typeTriples() [][3]entity.CategoryType {
	triples := make([][3]entity.CategoryType, 0, 125)
	for _, a := range entity.AllCategoryTypes {
		for _, b := range entity.AllCategoryTypes {
			for _, c := range entity.AllCategoryTypes {
				triples = append(triples, [3]entity.CategoryType{a, b, c})
			}
		}
	}
	return triples
}

// typeLayoutValid mirrors partitionTypes' rules: disjoint axes, every
// required type present, Team and League never on opposite axes.
func typeLayoutValid(rowTypes, colTypes [3]entity.CategoryType) bool {
	for _, categoryType := range rowTypes {
		if containsType(colTypes[:], categoryType) {
			return false
		}
	}

	present := make(map[entity.CategoryType]struct{}, 5)
	for i := 0; i < 3; i++ {
		present[rowTypes[i]] = struct{}{}
		present[colTypes[i]] = struct{}{}
	}
	for _, required := range entity.RequiredCategoryTypes {
		if _, ok := present[required]; !ok {
			return false
		}
	}

	rowHasTeam := containsType(rowTypes[:], entity.CategoryTeam)
	rowHasLeague := containsType(rowTypes[:], entity.CategoryLeague)
	colHasTeam := containsType(colTypes[:], entity.CategoryTeam)
	colHasLeague := containsType(colTypes[:], entity.CategoryLeague)

	return !(rowHasTeam && colHasLeague) && !(rowHasLeague && colHasTeam)
}

// assignSlot fills one header slot and recurses, pruning a candidate as
// soon as any crossing cell loses its last matching record.
func (that *categorySelector) assignSlot(layout *categoryLayout, slot int, taken map[string]struct{}, ceiling int, budget *int) bool {
	if slot == len(slotOrder) {
		return that.validateLayout(layout, ceiling)
	}

	axis, index := slotOrder[slot][0], slotOrder[slot][1]
	categoryType := layout.rowTypes[index]
	if axis == 1 {
		categoryType = layout.colTypes[index]
	}

	for _, value := range that.valuesByType[categoryType] {
		if *budget <= 0 {
			return false
		}
		*budget--

		if _, dup := taken[value]; dup {
			continue
		}

		if axis == 0 {
			layout.rowValues[index] = value
		} else {
			layout.colValues[index] = value
		}
		if !that.slotViable(layout, axis, index, ceiling) {
			continue
		}

		taken[value] = struct{}{}
		if that.assignSlot(layout, slot+1, taken, ceiling, budget) {
			return true
		}
		delete(taken, value)
	}

	if axis == 0 {
		layout.rowValues[index] = ""
	} else {
		layout.colValues[index] = ""
	}

	return false
}

// slotViable checks the just-assigned slot against every already
// assigned slot of the other axis.
func (that *categorySelector) slotViable(layout *categoryLayout, axis, index, ceiling int) bool {
	if axis == 0 {
		for col := 0; col < 3; col++ {
			if layout.colValues[col] == "" {
				continue
			}
			if !that.pairMatchable(layout.constraintAt(index, col), ceiling) {
				return false
			}
		}
		return true
	}

	for row := 0; row < 3; row++ {
		if layout.rowValues[row] == "" {
			continue
		}
		if !that.pairMatchable(layout.constraintAt(row, index), ceiling) {
			return false
		}
	}
	return true
}

// fallbackLayout fills the deterministic type layout with values, first
// by the same sampling-and-matching search, then by first-available
// values per type. The latter path may leave unmatchable cells; the
// builder degrades those to empty.
func (that *categorySelector) fallbackLayout(ceiling int) categoryLayout {
	for attempt := 0; attempt < that.retryAttempts; attempt++ {
		layout := categoryLayout{rowTypes: fallbackRowTypes, colTypes: fallbackColTypes}
		taken := make(map[string]struct{}, 6)

		ok := true
		for i := 0; i < 3 && ok; i++ {
			layout.rowValues[i], ok = that.sampleValue(layout.rowTypes[i], false, taken)
			taken[layout.rowValues[i]] = struct{}{}
		}
		for i := 0; i < 3 && ok; i++ {
			layout.colValues[i], ok = that.sampleValue(layout.colTypes[i], false, taken)
			taken[layout.colValues[i]] = struct{}{}
		}
		if ok && that.validateLayout(&layout, ceiling) {
			return layout
		}
	}

	layout := categoryLayout{rowTypes: fallbackRowTypes, colTypes: fallbackColTypes}
	taken := make(map[string]struct{}, 6)
	for i := 0; i < 3; i++ {
		layout.rowValues[i] = that.firstAvailable(layout.rowTypes[i], taken)
		taken[layout.rowValues[i]] = struct{}{}
	}
	for i := 0; i < 3; i++ {
		layout.colValues[i] = that.firstAvailable(layout.colTypes[i], taken)
		taken[layout.colValues[i]] = struct{}{}
	}

	return layout
}

func (that *categorySelector) firstAvailable(categoryType entity.CategoryType, taken map[string]struct{}) string {
	for _, value := range that.valuesByType[categoryType] {
		if _, dup := taken[value]; !dup {
			return value
		}
	}
	return ""
}

package dataset

import (
	"sort"
	"strings"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// Filter field names accepted by Search.
const (
	FieldName        = "name"
	FieldTeam        = "team"
	FieldCountry     = "country"
	FieldPosition    = "position"
	FieldLeague      = "league"
	FieldShirtNumber = "shirt_number"
)

// SearchFields lists every filterable field.
var SearchFields = []string{
	FieldName,
	FieldTeam,
	FieldCountry,
	FieldPosition,
	FieldLeague,
	FieldShirtNumber,
}

// Accessor is the read-only boundary the engine consumes. Implementations
// load once and serve from memory; records never change mid-session.
type Accessor interface {
	GetAll() []entity.PlayerRecord
	Search(filters map[string]string) []entity.PlayerRecord
}

type static struct {
	records []entity.PlayerRecord
}

// NewStatic wraps an already-loaded slice of records in an Accessor.
func NewStatic(records []entity.PlayerRecord) Accessor {
	return &static{records: records}
}

func (that *static) GetAll() []entity.PlayerRecord {
	return that.records
}

// Search - case-insensitive substring match per provided field,
// AND-combined across fields.
func (that *static) Search(filters map[string]string) []entity.PlayerRecord {
	var matched []entity.PlayerRecord
	for _, record := range that.records {
		if matchesFilters(&record, filters) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matchesFilters(record *entity.PlayerRecord, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		var have string
		switch field {
		case FieldName:
			have = record.Name
		case FieldTeam:
			have = record.Team
		case FieldCountry:
			have = record.Country
		case FieldPosition:
			have = record.Position
		case FieldLeague:
			have = record.League
		case FieldShirtNumber:
			have = entity.CategoryShirtNumber.ValueOf(record)
		default:
			return false
		}
		if !strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// CategoryValues returns the sorted distinct values present in the
// dataset for a category type.
func CategoryValues(accessor Accessor, categoryType entity.CategoryType) []string {
	seen := make(map[string]struct{})
	for _, record := range accessor.GetAll() {
		if categoryType == entity.CategoryPosition {
			for _, position := range record.Positions() {
				seen[position] = struct{}{}
			}
			continue
		}
		if value := categoryType.ValueOf(&record); value != "" {
			seen[value] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)

	return values
}

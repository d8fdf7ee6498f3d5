package entity

import "strconv"

// CategoryType is the closed set of constraints a header cell can carry.
type CategoryType string

const (
	CategoryCountry     CategoryType = "country"
	CategoryPosition    CategoryType = "position"
	CategoryLeague      CategoryType = "league"
	CategoryTeam        CategoryType = "team"
	CategoryShirtNumber CategoryType = "shirt_number"
)

// AllCategoryTypes lists every selectable category type.
var AllCategoryTypes = []CategoryType{
	CategoryCountry,
	CategoryPosition,
	CategoryLeague,
	CategoryTeam,
	CategoryShirtNumber,
}

// RequiredCategoryTypes must all appear somewhere on a generated board.
// ShirtNumber is the only optional type.
var RequiredCategoryTypes = []CategoryType{
	CategoryCountry,
	CategoryPosition,
	CategoryLeague,
	CategoryTeam,
}

// IsValid reports whether the type belongs to the closed enumeration.
func (that CategoryType) IsValid() bool {
	switch that {
	case CategoryCountry, CategoryPosition, CategoryLeague, CategoryTeam, CategoryShirtNumber:
		return true
	default:
		return false
	}
}

// ValueOf - extracts the record's value for this category as a string.
// Records without a shirt number yield "".
func (that CategoryType) ValueOf(record *PlayerRecord) string {
	switch that {
	case CategoryCountry:
		return record.Country
	case CategoryPosition:
		return record.Position
	case CategoryLeague:
		return record.League
	case CategoryTeam:
		return record.Team
	case CategoryShirtNumber:
		if record.ShirtNumber == 0 {
			return ""
		}
		return strconv.Itoa(record.ShirtNumber)
	default:
		return ""
	}
}

// Matches - reports whether the record satisfies the category constraint.
// Position uses contains semantics over the record's role list; every
// other type is exact equality.
func (that CategoryType) Matches(record *PlayerRecord, value string) bool {
	if that == CategoryPosition {
		for _, position := range record.Positions() {
			if position == value {
				return true
			}
		}
		return false
	}
	return that.ValueOf(record) == value && value != ""
}

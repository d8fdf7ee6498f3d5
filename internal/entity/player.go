package entity

import "strings"

const (
	// Priority tiers assigned by the dataset. Unranked records are
	// treated as obscure when a tier is required.
	TierUnranked = 0
	TierFamous   = 1
	TierMedium   = 2
	TierObscure  = 3
)

// PlayerRecord is an immutable dataset row. The engine never mutates one;
// cells share pointers into the dataset.
type PlayerRecord struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Country     string `json:"country"`
	Position    string `json:"position"`
	League      string `json:"league"`
	ShirtNumber int    `json:"shirt_number,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// Positions - splits a possibly multi-valued position string ("AM/LW/ST")
// into its individual roles.
func (that *PlayerRecord) Positions() []string {
	parts := strings.Split(that.Position, "/")
	positions := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			positions = append(positions, part)
		}
	}
	return positions
}

// EffectiveTier - maps the record's priority onto a usable tier,
// folding unranked records into the obscure tier.
func (that *PlayerRecord) EffectiveTier() int {
	if that.Priority == TierUnranked {
		return TierObscure
	}
	return that.Priority
}

// Key - identifies a record across pools and boards. Names alone are not
// unique in a squad dataset; name+team is.
func (that *PlayerRecord) Key() string {
	return that.Name + "|" + that.Team
}

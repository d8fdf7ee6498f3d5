package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryType_Matches(t *testing.T) {
	record := &PlayerRecord{
		Name:        "Toni Kroos",
		Team:        "Real Madrid",
		Country:     "Germany",
		Position:    "CM/DM",
		League:      "LaLiga",
		ShirtNumber: 8,
	}

	t.Run("exact types match on equality", func(t *testing.T) {
		assert.True(t, CategoryCountry.Matches(record, "Germany"))
		assert.True(t, CategoryTeam.Matches(record, "Real Madrid"))
		assert.True(t, CategoryLeague.Matches(record, "LaLiga"))
		assert.True(t, CategoryShirtNumber.Matches(record, "8"))

		assert.False(t, CategoryCountry.Matches(record, "germany"))
		assert.False(t, CategoryTeam.Matches(record, "Real"))
	})

	t.Run("position matches any role of a multi-valued record", func(t *testing.T) {
		assert.True(t, CategoryPosition.Matches(record, "CM"))
		assert.True(t, CategoryPosition.Matches(record, "DM"))
		assert.False(t, CategoryPosition.Matches(record, "ST"))
		assert.False(t, CategoryPosition.Matches(record, "C"))
	})

	t.Run("absent shirt number matches nothing", func(t *testing.T) {
		unnumbered := &PlayerRecord{Name: "Trialist", Team: "Leeds"}
		assert.False(t, CategoryShirtNumber.Matches(unnumbered, "0"))
		assert.False(t, CategoryShirtNumber.Matches(unnumbered, ""))
	})
}

func TestCategoryType_ValueOf(t *testing.T) {
	record := &PlayerRecord{
		Team:        "Arsenal",
		Country:     "Norway",
		Position:    "AM",
		League:      "Premier League",
		ShirtNumber: 8,
	}

	require.Equal(t, "Norway", CategoryCountry.ValueOf(record))
	require.Equal(t, "AM", CategoryPosition.ValueOf(record))
	require.Equal(t, "Premier League", CategoryLeague.ValueOf(record))
	require.Equal(t, "Arsenal", CategoryTeam.ValueOf(record))
	require.Equal(t, "8", CategoryShirtNumber.ValueOf(record))

	unnumbered := &PlayerRecord{}
	require.Equal(t, "", CategoryShirtNumber.ValueOf(unnumbered))
}

func TestCategoryType_IsValid(t *testing.T) {
	for _, categoryType := range AllCategoryTypes {
		assert.True(t, categoryType.IsValid())
	}
	assert.False(t, CategoryType("age").IsValid())
}

func TestPlayerRecord_Positions(t *testing.T) {
	record := &PlayerRecord{Position: "AM/LW/ST"}
	require.Equal(t, []string{"AM", "LW", "ST"}, record.Positions())

	single := &PlayerRecord{Position: "GK"}
	require.Equal(t, []string{"GK"}, single.Positions())
}

func TestPlayerRecord_EffectiveTier(t *testing.T) {
	assert.Equal(t, TierFamous, (&PlayerRecord{Priority: 1}).EffectiveTier())
	assert.Equal(t, TierMedium, (&PlayerRecord{Priority: 2}).EffectiveTier())
	// unranked records count as obscure
	assert.Equal(t, TierObscure, (&PlayerRecord{}).EffectiveTier())
}

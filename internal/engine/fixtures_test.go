package engine

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/footygrid/footygrid-backend/internal/dataset"
	"github.com/footygrid/footygrid-backend/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// squadRecords builds a dense synthetic dataset: four countries, four
// teams across two leagues, four positions per squad. Positions map to
// tiers so every difficulty has coverage: GK/ST are famous, CM medium,
// CB obscure.
func squadRecords() []entity.PlayerRecord {
	countries := []string{"Argentina", "Brazil", "Spain", "France"}
	teams := map[string]string{
		"Barcelona":   "LaLiga",
		"Real Madrid": "LaLiga",
		"Arsenal":     "Premier League",
		"Chelsea":     "Premier League",
	}
	positions := []string{"GK", "ST", "CM", "CB"}
	tiers := map[string]int{"GK": 1, "ST": 1, "CM": 2, "CB": 3}

	var records []entity.PlayerRecord
	shirt := 0
	for _, country := range countries {
		for team, league := range teams {
			for _, position := range positions {
				shirt++
				records = append(records, entity.PlayerRecord{
					Name:        fmt.Sprintf("%s %s %s", country, team, position),
					Team:        team,
					League:      league,
					Country:     country,
					Position:    position,
					ShirtNumber: shirt%11 + 1,
					Priority:    tiers[position],
				})
			}
		}
	}

	return records
}

// perfectNineRecords is the minimal dataset with a guaranteed one-to-one
// assignment: three countries cross three column constraints (the GK
// position, one league, one team), all famous tier. Every other position
// and league appears once only, so no alternative category value
// survives selection.
func perfectNineRecords() []entity.PlayerRecord {
	return []entity.PlayerRecord{
		{Name: "Ana Alpha", Country: "Argentina", Team: "Velez", League: "LaLiga", Position: "AM", Priority: 1},
		{Name: "Bruno Beta", Country: "Brazil", Team: "Santos", League: "LaLiga", Position: "LW", Priority: 1},
		{Name: "Sergio Gamma", Country: "Spain", Team: "Getafe", League: "LaLiga", Position: "RW", Priority: 1},
		{Name: "Aldo Delta", Country: "Argentina", Team: "Arsenal", League: "LaLiga", Position: "ST", Priority: 1},
		{Name: "Bento Epsilon", Country: "Brazil", Team: "Arsenal", League: "LaLiga", Position: "CM", Priority: 1},
		{Name: "Santi Zeta", Country: "Spain", Team: "Arsenal", League: "LaLiga", Position: "CB", Priority: 1},
		{Name: "Agustin Eta", Country: "Argentina", Team: "Boca", League: "Primera", Position: "GK", Priority: 1},
		{Name: "Bernardo Theta", Country: "Brazil", Team: "Flamengo", League: "Serie A", Position: "GK", Priority: 1},
		{Name: "Salva Iota", Country: "Spain", Team: "Roma", League: "Serie B", Position: "GK", Priority: 1},
	}
}

func testAccessor() dataset.Accessor {
	return dataset.NewStatic(squadRecords())
}

func newTestEngine(records []entity.PlayerRecord, seed int64) *Engine {
	return New(testLogger(), dataset.NewStatic(records), Options{Seed: seed})
}

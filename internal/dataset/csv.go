package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

var ErrMissingColumn = errors.New("missing required column")

// csvColumns maps header names of the squad export to record fields.
// The export is produced by the squad scraping script and always carries
// at least name/team/league/country/position.
var requiredColumns = []string{"name", "team", "league", "country", "position"}

// LoadCSV reads a squad export into player records. Rows with an empty
// name are skipped; shirt_number and priority are optional columns.
func LoadCSV(path string) ([]entity.PlayerRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var records []entity.PlayerRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		record := entity.PlayerRecord{
			Name:     field(row, index, "name"),
			Team:     field(row, index, "team"),
			League:   field(row, index, "league"),
			Country:  field(row, index, "country"),
			Position: field(row, index, "position"),
		}
		if record.Name == "" {
			continue
		}

		// Optional numeric columns; malformed values degrade to zero.
		record.ShirtNumber, _ = strconv.Atoi(field(row, index, "shirt_number"))
		record.Priority, _ = strconv.Atoi(field(row, index, "priority"))

		records = append(records, record)
	}

	return records, nil
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

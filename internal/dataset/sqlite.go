package dataset

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"

	"github.com/footygrid/footygrid-backend/internal/entity"
)

// LoadSQLite reads every player row from a sqlite dataset file. The
// players table mirrors the CSV export columns.
func LoadSQLite(ctx context.Context, path string) ([]entity.PlayerRecord, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}
	defer conn.Close()

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	query := `SELECT name, team, league, country, position,
		COALESCE(shirt_number, 0), COALESCE(priority, 0) FROM players`

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query players: %w", err)
	}
	defer rows.Close()

	var records []entity.PlayerRecord
	for rows.Next() {
		var record entity.PlayerRecord
		err = rows.Scan(
			&record.Name,
			&record.Team,
			&record.League,
			&record.Country,
			&record.Position,
			&record.ShirtNumber,
			&record.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("can't scan player row: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading players: %w", err)
	}

	return records, nil
}

// InitSQLite creates the players table for tooling that seeds a dataset.
func InitSQLite(ctx context.Context, path string) error {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("can't open database: %w", err)
	}
	defer conn.Close()

	query := `CREATE TABLE IF NOT EXISTS players (
		name TEXT NOT NULL,
		team TEXT NOT NULL,
		league TEXT NOT NULL,
		country TEXT NOT NULL,
		position TEXT NOT NULL,
		shirt_number INTEGER,
		priority INTEGER
	)`

	if _, err = conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

package entity

import "time"

const (
	MarkNone     = ""
	MarkUser     = "X"
	MarkOpponent = "O"

	TurnUser     = "user"
	TurnOpponent = "opponent"

	WinnerNone     = ""
	WinnerUser     = "user"
	WinnerOpponent = "opponent"
	WinnerDraw     = "draw"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// GridSize covers the header row/column plus the 3x3 interior.
const GridSize = 4

// WinCombos indexes the interior 3x3 in row-major order (0..8):
// three rows, three columns, two diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is one square of the 4x4 grid. Header cells carry a category type
// and value; data cells carry an optional player and a mark.
type Cell struct {
	Header        bool          `json:"header,omitempty"`
	CategoryType  CategoryType  `json:"category_type,omitempty"`
	CategoryValue string        `json:"category_value,omitempty"`
	Player        *PlayerRecord `json:"player,omitempty"`
	Mark          string        `json:"mark,omitempty"`
}

// Game is a value object. Move operations copy it and return the copy;
// the grid is a fixed-size array precisely so plain assignment snapshots
// the whole board.
type Game struct {
	ID   string                   `json:"id"`
	Grid [GridSize][GridSize]Cell `json:"grid"`

	RowTypes  [3]CategoryType `json:"row_types"`
	RowValues [3]string       `json:"row_values"`
	ColTypes  [3]CategoryType `json:"col_types"`
	ColValues [3]string       `json:"col_values"`

	Turn      string `json:"turn"`
	Winner    string `json:"winner,omitempty"`
	Completed bool   `json:"completed"`

	Difficulty         string `json:"difficulty"`
	PreviousDifficulty string `json:"previous_difficulty,omitempty"`
	Progress           int    `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
}

// Clone - snapshots the game. Cells hold pointers to immutable dataset
// records, so the array copy is a deep enough copy.
func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}

// IsInterior reports whether (row, col) addresses a playable data cell.
func (that *Game) IsInterior(row, col int) bool {
	return row >= 1 && row < GridSize && col >= 1 && col < GridSize
}

// CellAt returns a pointer into the game's own grid. Callers that need
// value semantics must Clone first.
func (that *Game) CellAt(row, col int) *Cell {
	return &that.Grid[row][col]
}

// InteriorCell addresses the playable 3x3 by combo index 0..8.
func (that *Game) InteriorCell(index int) *Cell {
	return &that.Grid[1+index/3][1+index%3]
}

// CellCategories returns the row and column constraints governing an
// interior cell.
func (that *Game) CellCategories(row, col int) (rowType CategoryType, rowValue string, colType CategoryType, colValue string) {
	return that.RowTypes[row-1], that.RowValues[row-1], that.ColTypes[col-1], that.ColValues[col-1]
}

// DetermineResult - scans the interior marks for a finished outcome.
// Returns WinnerUser, WinnerOpponent, WinnerDraw, or WinnerNone while
// the game is still open.
func (that *Game) DetermineResult() string {
	for _, combo := range WinCombos {
		a := that.InteriorCell(combo[0]).Mark
		b := that.InteriorCell(combo[1]).Mark
		c := that.InteriorCell(combo[2]).Mark
		if a != MarkNone && a == b && b == c {
			if a == MarkUser {
				return WinnerUser
			}
			return WinnerOpponent
		}
	}

	for i := 0; i < 9; i++ {
		if that.InteriorCell(i).Mark == MarkNone {
			return WinnerNone
		}
	}

	return WinnerDraw
}

// HasUnmarkedCells reports whether any interior cell is still playable.
func (that *Game) HasUnmarkedCells() bool {
	for i := 0; i < 9; i++ {
		if that.InteriorCell(i).Mark == MarkNone {
			return true
		}
	}
	return false
}

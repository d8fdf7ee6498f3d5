package apperror

import "errors"

var (
	ErrInsufficientDataset = errors.New("dataset has fewer than 9 records")

	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrCellMismatch      = errors.New("player does not satisfy the cell's categories")
	ErrEmptyCell         = errors.New("cell has no player to mark")
	ErrUnknownPlayer     = errors.New("no player matches that name")
	ErrInvalidCategory   = errors.New("unknown category type")
	ErrInvalidDifficulty = errors.New("unknown difficulty level")
)

package engine

import (
	"github.com/footygrid/footygrid-backend/internal/apperror"
	"github.com/footygrid/footygrid-backend/internal/entity"
)

// TurnResult is the structured outcome of every move operation: failures
// carry the unchanged game plus a message, never an error.
type TurnResult struct {
	Success bool         `json:"success"`
	Game    *entity.Game `json:"game"`
	Message string       `json:"message,omitempty"`
}

func failure(game *entity.Game, err error) TurnResult {
	return TurnResult{Success: false, Game: game, Message: err.Error()}
}

// PlaceUserMark marks an interior cell for the user. The target must hold
// a record satisfying both axis categories and be unmarked.
func (that *Engine) PlaceUserMark(game *entity.Game, row, col int) TurnResult {
	if err := that.validateUserMove(game, row, col); err != nil {
		return failure(game, err)
	}

	cell := game.CellAt(row, col)
	if cell.Player == nil {
		return failure(game, apperror.ErrEmptyCell)
	}
	if !satisfiesCell(game, row, col, cell.Player) {
		return failure(game, apperror.ErrCellMismatch)
	}

	next := game.Clone()
	next.CellAt(row, col).Mark = entity.MarkUser
	that.finishMove(next)

	return TurnResult{Success: true, Game: next}
}

// Guess resolves a free-text name, and on a category-satisfying match
// replaces the cell's record with the guessed one and marks it for the
// user. Unresolved or mismatched guesses leave the game untouched.
func (that *Engine) Guess(game *entity.Game, row, col int, name string) TurnResult {
	if err := that.validateUserMove(game, row, col); err != nil {
		return failure(game, err)
	}

	record, ok := that.matcher.Resolve(name)
	if !ok {
		return failure(game, apperror.ErrUnknownPlayer)
	}
	if !satisfiesCell(game, row, col, record) {
		return failure(game, apperror.ErrCellMismatch)
	}

	next := game.Clone()
	cell := next.CellAt(row, col)
	cell.Player = record
	cell.Mark = entity.MarkUser
	that.finishMove(next)

	return TurnResult{Success: true, Game: next}
}

// Skip hands the turn to the opponent without marking anything.
func (that *Engine) Skip(game *entity.Game) TurnResult {
	if game.Completed {
		return failure(game, apperror.ErrGameFinished)
	}
	if game.Turn != entity.TurnUser {
		return failure(game, apperror.ErrNotYourTurn)
	}

	next := game.Clone()
	next.Turn = entity.TurnOpponent

	return TurnResult{Success: true, Game: next}
}

// PlaceOpponentMark lets the strategy pick and mark a cell. When nothing
// is left to mark the game completes as a draw.
func (that *Engine) PlaceOpponentMark(game *entity.Game) TurnResult {
	if game.Completed {
		return failure(game, apperror.ErrGameFinished)
	}
	if game.Turn != entity.TurnOpponent {
		return failure(game, apperror.ErrNotYourTurn)
	}

	next := game.Clone()

	index, ok := that.opponent.ChooseCell(next)
	if !ok {
		that.complete(next, entity.WinnerDraw)
		return TurnResult{Success: true, Game: next}
	}

	next.InteriorCell(index).Mark = entity.MarkOpponent
	that.finishMove(next)

	return TurnResult{Success: true, Game: next}
}

func (that *Engine) validateUserMove(game *entity.Game, row, col int) error {
	if game.Completed {
		return apperror.ErrGameFinished
	}
	if game.Turn != entity.TurnUser {
		return apperror.ErrNotYourTurn
	}
	if !game.IsInterior(row, col) {
		return apperror.ErrInvalidCell
	}
	if game.CellAt(row, col).Mark != entity.MarkNone {
		return apperror.ErrCellOccupied
	}
	return nil
}

func satisfiesCell(game *entity.Game, row, col int, record *entity.PlayerRecord) bool {
	rowType, rowValue, colType, colValue := game.CellCategories(row, col)
	return rowType.Matches(record, rowValue) && colType.Matches(record, colValue)
}

// finishMove re-evaluates the terminal condition after a mark and either
// completes the game or passes the turn.
func (that *Engine) finishMove(game *entity.Game) {
	switch result := game.DetermineResult(); result {
	case entity.WinnerNone:
		if game.Turn == entity.TurnUser {
			game.Turn = entity.TurnOpponent
		} else {
			game.Turn = entity.TurnUser
		}
	default:
		that.complete(game, result)
	}
}

// complete finalizes the game and folds its outcome into the difficulty
// progression. A transition stamps the game with the level it was earned
// from.
func (that *Engine) complete(game *entity.Game, winner string) {
	game.Winner = winner
	game.Completed = true
	game.Turn = ""

	var outcome string
	switch winner {
	case entity.WinnerUser:
		outcome = entity.OutcomeWin
	case entity.WinnerOpponent:
		outcome = entity.OutcomeLoss
	default:
		outcome = entity.OutcomeDraw
	}

	if previous := that.tracker.RecordOutcome(outcome); previous != "" {
		game.PreviousDifficulty = previous
		game.Difficulty = that.tracker.Difficulty()
	}
	game.Progress = that.tracker.Progress()
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markInterior(game *Game, row, col int, mark string) {
	game.Grid[row][col].Mark = mark
}

func TestGame_DetermineResult(t *testing.T) {
	t.Run("user wins on interior row", func(t *testing.T) {
		// Given: user marks across interior row 2
		game := &Game{}
		markInterior(game, 2, 1, MarkUser)
		markInterior(game, 2, 2, MarkUser)
		markInterior(game, 2, 3, MarkUser)

		// Then: the user is reported as winner
		require.Equal(t, WinnerUser, game.DetermineResult())
	})

	t.Run("opponent wins on diagonal", func(t *testing.T) {
		game := &Game{}
		markInterior(game, 1, 1, MarkOpponent)
		markInterior(game, 2, 2, MarkOpponent)
		markInterior(game, 3, 3, MarkOpponent)

		require.Equal(t, WinnerOpponent, game.DetermineResult())
	})

	t.Run("open game has no result", func(t *testing.T) {
		game := &Game{}
		markInterior(game, 1, 1, MarkUser)
		markInterior(game, 2, 2, MarkOpponent)

		require.Equal(t, WinnerNone, game.DetermineResult())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		game := &Game{}
		marks := [9]string{
			MarkUser, MarkUser, MarkOpponent,
			MarkOpponent, MarkOpponent, MarkUser,
			MarkUser, MarkUser, MarkOpponent,
		}
		for i, mark := range marks {
			game.InteriorCell(i).Mark = mark
		}

		require.Equal(t, WinnerDraw, game.DetermineResult())
		assert.False(t, game.HasUnmarkedCells())
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with one marked cell
	game := &Game{ID: "123", Turn: TurnUser}
	markInterior(game, 1, 1, MarkUser)

	// When: the clone's grid changes
	clone := game.Clone()
	clone.Grid[1][2].Mark = MarkOpponent
	clone.Turn = TurnOpponent

	// Then: the original stays untouched
	require.Equal(t, MarkNone, game.Grid[1][2].Mark)
	require.Equal(t, TurnUser, game.Turn)
	assert.Equal(t, MarkUser, clone.Grid[1][1].Mark)
}

func TestGame_IsInterior(t *testing.T) {
	game := &Game{}

	assert.True(t, game.IsInterior(1, 1))
	assert.True(t, game.IsInterior(3, 3))
	assert.False(t, game.IsInterior(0, 1))
	assert.False(t, game.IsInterior(1, 0))
	assert.False(t, game.IsInterior(4, 2))
	assert.False(t, game.IsInterior(-1, 2))
}

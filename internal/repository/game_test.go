package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footygrid/footygrid-backend/internal/apperror"
	"github.com/footygrid/footygrid-backend/internal/entity"
	"github.com/footygrid/footygrid-backend/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a freshly generated game
	game := &entity.Game{
		ID:         "123",
		Turn:       entity.TurnUser,
		Difficulty: entity.DifficultyEasy,
	}

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with board state
		game := &entity.Game{
			ID:         "123",
			Turn:       entity.TurnOpponent,
			Difficulty: entity.DifficultyMedium,
			RowTypes:   [3]entity.CategoryType{entity.CategoryCountry, entity.CategoryCountry, entity.CategoryPosition},
			RowValues:  [3]string{"Argentina", "Brazil", "GK"},
		}
		game.Grid[1][1] = entity.Cell{
			Player: &entity.PlayerRecord{Name: "Emi Martinez", Team: "Aston Villa", Priority: 1},
			Mark:   entity.MarkUser,
		}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Turn, retrievedGame.Turn)
		require.Equal(t, game.RowValues, retrievedGame.RowValues)
		require.Equal(t, game.Grid[1][1].Player.Name, retrievedGame.Grid[1][1].Player.Name)
		assert.Equal(t, entity.MarkUser, retrievedGame.Grid[1][1].Mark)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		_, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound must be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored game
	game := &entity.Game{ID: "123", Turn: entity.TurnUser}
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// When: DeleteByID is called
	require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))

	// Then: the game is gone
	_, err := gameRepo.GetByID(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

package service

import (
	"testing"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoardServiceTest(t *testing.T) BoardService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewBoardService(repository.NewBoardRepository(testDB))
}

func TestBoardService_Lifecycle(t *testing.T) {
	boardService := setupBoardServiceTest(t)

	board := &model.Board{
		Email: "buyer@example.com",
		Type:  model.BoardTypeQnA,
		Title: "Is this true to size?",
	}
	require.NoError(t, boardService.CreateBoard(board))
	require.NotZero(t, board.BID)

	boards, err := boardService.ListBoards(model.BoardTypeQnA)
	require.NoError(t, err)
	assert.Len(t, boards, 1)

	board.Title = "Is this true to size? (edited)"
	require.NoError(t, boardService.UpdateBoard(board))

	got, err := boardService.GetBoard(board.BID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Is this true to size? (edited)", got.Title)

	require.NoError(t, boardService.DeleteBoard(board.BID))
	require.NoError(t, boardService.DeleteBoard(board.BID))

	got, err = boardService.GetBoard(board.BID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	boards, err = boardService.ListBoards(model.BoardTypeQnA)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

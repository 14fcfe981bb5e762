package service

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/pkg/logger"
)

var (
	ErrBoardNotFound = errors.New("board not found")
)

type BoardService interface {
	GetBoard(bid uint) (*model.Board, error)
	ListBoards(boardType model.BoardType) ([]model.Board, error)
	CreateBoard(board *model.Board) error
	UpdateBoard(board *model.Board) error
	DeleteBoard(bid uint) error
}

type boardService struct {
	boardRepo repository.BoardRepository
}

func NewBoardService(boardRepo repository.BoardRepository) BoardService {
	return &boardService{boardRepo: boardRepo}
}

func (s *boardService) GetBoard(bid uint) (*model.Board, error) {
	return s.boardRepo.FindByBID(bid)
}

func (s *boardService) ListBoards(boardType model.BoardType) ([]model.Board, error) {
	return s.boardRepo.FindByType(boardType)
}

func (s *boardService) CreateBoard(board *model.Board) error {
	if err := s.boardRepo.Create(board); err != nil {
		return err
	}

	logger.Info("Board created", map[string]interface{}{
		"bid":   board.BID,
		"type":  board.Type,
		"email": board.Email,
	})
	return nil
}

func (s *boardService) UpdateBoard(board *model.Board) error {
	if err := s.boardRepo.Update(board); err != nil {
		return err
	}

	logger.Info("Board updated", map[string]interface{}{
		"bid": board.BID,
	})
	return nil
}

func (s *boardService) DeleteBoard(bid uint) error {
	if err := s.boardRepo.Delete(bid); err != nil {
		return err
	}

	logger.Info("Board deleted", map[string]interface{}{
		"bid": bid,
	})
	return nil
}

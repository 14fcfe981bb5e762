package repository

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/pkg/logger"
	"gorm.io/gorm"
)

type BoardRepository interface {
	FindByBID(bid uint) (*model.Board, error)
	FindByType(boardType model.BoardType) ([]model.Board, error)
	Create(board *model.Board) error
	Update(board *model.Board) error
	Delete(bid uint) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

// FindByBID returns nil without an error when no live board has the given ID.
func (r *boardRepository) FindByBID(bid uint) (*model.Board, error) {
	logger.Debug("Finding board by BID in database", map[string]interface{}{
		"bid": bid,
	})

	var board model.Board
	err := r.db.Where("bid = ? AND is_deleted = ?", bid, false).Take(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Board not found in database", map[string]interface{}{
			"bid": bid,
		})
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find board by BID in database", err, map[string]interface{}{
			"bid": bid,
		})
		return nil, err
	}

	logger.Debug("Board found by BID in database", map[string]interface{}{
		"bid":   board.BID,
		"type":  board.Type,
		"email": board.Email,
	})
	return &board, nil
}

func (r *boardRepository) FindByType(boardType model.BoardType) ([]model.Board, error) {
	logger.Debug("Finding boards by type in database", map[string]interface{}{
		"type": boardType,
	})

	var boards []model.Board
	if err := r.db.Where("type = ? AND is_deleted = ?", boardType, false).
		Order("reg_date DESC").
		Order("bid DESC").
		Find(&boards).Error; err != nil {
		logger.Error("Failed to find boards by type in database", err, map[string]interface{}{
			"type": boardType,
		})
		return nil, err
	}

	logger.Debug("Boards found by type in database", map[string]interface{}{
		"type":  boardType,
		"count": len(boards),
	})
	return boards, nil
}

// Create inserts the board and writes the generated BID back into it.
// Registration time, statistics and the delete flag are left to column defaults.
func (r *boardRepository) Create(board *model.Board) error {
	logger.Debug("Creating board in database", map[string]interface{}{
		"iid":   board.IID,
		"email": board.Email,
		"type":  board.Type,
	})

	if err := r.db.Omit("reg_date", "total_sta", "is_deleted").Create(board).Error; err != nil {
		logger.Error("Failed to create board in database", err, map[string]interface{}{
			"iid":   board.IID,
			"email": board.Email,
			"type":  board.Type,
		})
		return err
	}

	logger.Debug("Board created in database", map[string]interface{}{
		"bid":  board.BID,
		"type": board.Type,
	})
	return nil
}

func (r *boardRepository) Update(board *model.Board) error {
	logger.Debug("Updating board in database", map[string]interface{}{
		"bid":  board.BID,
		"type": board.Type,
	})

	if err := r.db.Model(&model.Board{}).Where("bid = ?", board.BID).
		Updates(map[string]interface{}{
			"iid":       board.IID,
			"type":      board.Type,
			"type_qna":  board.TypeQnA,
			"title":     board.Title,
			"content":   board.Content,
			"img":       board.Img,
			"total_sta": board.TotalSta,
		}).Error; err != nil {
		logger.Error("Failed to update board in database", err, map[string]interface{}{
			"bid": board.BID,
		})
		return err
	}

	logger.Debug("Board updated in database", map[string]interface{}{
		"bid": board.BID,
	})
	return nil
}

// Delete flags the board as deleted. Deleting an already deleted board is a no-op.
func (r *boardRepository) Delete(bid uint) error {
	logger.Debug("Deleting board in database", map[string]interface{}{
		"bid": bid,
	})

	if err := r.db.Model(&model.Board{}).Where("bid = ?", bid).
		Update("is_deleted", true).Error; err != nil {
		logger.Error("Failed to delete board in database", err, map[string]interface{}{
			"bid": bid,
		})
		return err
	}

	logger.Debug("Board deleted in database", map[string]interface{}{
		"bid": bid,
	})
	return nil
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/service"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
)

type BoardController struct {
	boardService service.BoardService
}

func NewBoardController(boardService service.BoardService) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

type BoardRequest struct {
	IID      uint            `json:"iid"`
	Email    string          `json:"email" binding:"required,email"`
	Type     model.BoardType `json:"type" binding:"required,oneof=review qna notice"`
	TypeQnA  string          `json:"type_qna"`
	Title    string          `json:"title" binding:"required,max=200"`
	Content  string          `json:"content"`
	Img      string          `json:"img"`
	TotalSta int             `json:"total_sta" binding:"gte=0"`
}

func (r *BoardRequest) toModel() *model.Board {
	return &model.Board{
		IID:      r.IID,
		Email:    r.Email,
		Type:     r.Type,
		TypeQnA:  r.TypeQnA,
		Title:    r.Title,
		Content:  r.Content,
		Img:      r.Img,
		TotalSta: r.TotalSta,
	}
}

// ListBoards returns boards of one type, newest first
// GET /api/v1/boards?type=review
func (ctrl *BoardController) ListBoards(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	boardType := model.BoardType(c.Query("type"))
	if boardType == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "게시판 종류(type)가 필요합니다")
		return
	}

	boards, err := ctrl.boardService.ListBoards(boardType)
	if err != nil {
		log.Error("Failed to fetch boards", err, map[string]interface{}{
			"type": boardType,
		})
		apperrors.FromError(c, err, "board")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"boards": boards,
		"count":  len(boards),
	})
}

// GetBoard GET /api/v1/boards/:bid
func (ctrl *BoardController) GetBoard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bid, ok := parseIDParam(c, "bid")
	if !ok {
		return
	}

	board, err := ctrl.boardService.GetBoard(bid)
	if err != nil {
		log.Error("Failed to fetch board", err, map[string]interface{}{
			"bid": bid,
		})
		apperrors.FromError(c, err, "board")
		return
	}
	if board == nil {
		log.Warn("Board not found", map[string]interface{}{
			"bid":   bid,
			"error": service.ErrBoardNotFound.Error(),
		})
		apperrors.NotFound(c, "board")
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board})
}

// CreateBoard POST /api/v1/boards
func (ctrl *BoardController) CreateBoard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board := req.toModel()
	if err := ctrl.boardService.CreateBoard(board); err != nil {
		log.Error("Failed to create board", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.FromError(c, err, "board")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"board": board})
}

// UpdateBoard PUT /api/v1/boards/:bid
func (ctrl *BoardController) UpdateBoard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bid, ok := parseIDParam(c, "bid")
	if !ok {
		return
	}
	var req BoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board := req.toModel()
	board.BID = bid
	if err := ctrl.boardService.UpdateBoard(board); err != nil {
		log.Error("Failed to update board", err, map[string]interface{}{
			"bid": bid,
		})
		apperrors.FromError(c, err, "board")
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board})
}

// DeleteBoard soft-deletes; repeating it is harmless
// DELETE /api/v1/boards/:bid
func (ctrl *BoardController) DeleteBoard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bid, ok := parseIDParam(c, "bid")
	if !ok {
		return
	}

	if err := ctrl.boardService.DeleteBoard(bid); err != nil {
		log.Error("Failed to delete board", err, map[string]interface{}{
			"bid": bid,
		})
		apperrors.FromError(c, err, "board")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

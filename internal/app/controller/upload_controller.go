package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
	"github.com/ikkim/ft-backend/internal/storage"
)

type UploadController struct {
	storage storage.Presigner
}

func NewUploadController(storage storage.Presigner) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type PresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // items | boards, 기본값 items
}

// GeneratePresignedURL issues an S3 PUT URL; the returned file_url is what
// callers store in img1..img3 or a board's img
// POST /api/v1/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignedURLRequest
	if !bindJSON(c, &req) {
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = storage.FolderItems
	}

	upload, err := ctrl.storage.PresignUpload(c.Request.Context(), req.Filename, req.ContentType, folder)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidContentType) || errors.Is(err, storage.ErrInvalidFolder) {
			log.Warn("Rejected upload request", map[string]interface{}{
				"content_type": req.ContentType,
				"folder":       folder,
			})
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "이미지 파일(JPEG, PNG, GIF, WEBP)만 업로드할 수 있습니다")
			return
		}
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
			"folder":   folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "업로드 URL 생성에 실패했습니다")
		return
	}

	log.Info("Presigned URL generated", map[string]interface{}{
		"key":    upload.Key,
		"folder": folder,
	})

	c.JSON(http.StatusOK, upload)
}

package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 표준 에러 응답 구조
type ErrorResponse struct {
	Error   string `json:"error"`   // 에러 코드 (프론트엔드에서 매핑용)
	Message string `json:"message"` // 사용자 친화적 메시지 (한글)
}

// RespondWithError 에러 응답 헬퍼
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "인증에 실패했습니다"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, context string) {
	code, msg := notFound(context)
	RespondWithError(c, http.StatusNotFound, code, msg)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// FromError 저장소 에러를 분류해 알맞은 HTTP 상태로 응답
func FromError(c *gin.Context, err error, context string) {
	info := ParseError(err, context)

	switch info.Kind {
	case KindNotFound:
		RespondWithError(c, http.StatusNotFound, info.Code, info.Message)
	case KindDuplicate:
		Conflict(c, info.Code, info.Message)
	case KindForeignKey, KindNotNull:
		RespondWithError(c, http.StatusUnprocessableEntity, info.Code, info.Message)
	case KindConnection:
		RespondWithError(c, http.StatusServiceUnavailable, info.Code, info.Message)
	default:
		InternalError(c, info.Message)
	}
}

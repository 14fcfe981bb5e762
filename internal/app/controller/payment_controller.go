package controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/service"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
)

const CallbackSecretHeader = "X-Callback-Secret"

type PaymentController struct {
	orderService   service.OrderService
	callbackSecret string
	allowUnsigned  bool
}

// NewPaymentController builds the callback handler. With an empty secret,
// callbacks are accepted only when allowUnsigned is set.
func NewPaymentController(orderService service.OrderService, callbackSecret string, allowUnsigned bool) *PaymentController {
	return &PaymentController{
		orderService:   orderService,
		callbackSecret: callbackSecret,
		allowUnsigned:  allowUnsigned,
	}
}

// PaymentCallbackRequest 결제 대행사 상태 통지
type PaymentCallbackRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required,max=20"`
}

// Callback stores the status reported for an external order id as-is
// POST /api/v1/payments/callback
func (ctrl *PaymentController) Callback(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case ctrl.callbackSecret == "" && !ctrl.allowUnsigned:
		log.Warn("Payment callback rejected, no callback secret configured", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		apperrors.Unauthorized(c, "콜백 서명을 확인할 수 없습니다")
		return
	case ctrl.callbackSecret != "":
		got := c.GetHeader(CallbackSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(ctrl.callbackSecret)) != 1 {
			log.Warn("Payment callback rejected", map[string]interface{}{
				"ip": c.ClientIP(),
			})
			apperrors.Unauthorized(c, "콜백 서명이 올바르지 않습니다")
			return
		}
	}

	var req PaymentCallbackRequest
	if !bindJSON(c, &req) {
		return
	}

	status := model.OrderStatus(req.Status)
	if err := ctrl.orderService.UpdateStatusByOrderID(req.OrderID, status); err != nil {
		log.Error("Failed to apply payment callback", err, map[string]interface{}{
			"order_id": req.OrderID,
			"status":   req.Status,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	log.Info("Payment callback applied", map[string]interface{}{
		"order_id": req.OrderID,
		"status":   req.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"order_id": req.OrderID,
		"status":   status,
	})
}

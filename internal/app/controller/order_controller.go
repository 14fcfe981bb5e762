package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/service"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CreateOrderRequest struct {
	OrderID    string `json:"order_id" binding:"max=64"` // 비어 있으면 서버에서 발급
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	PostCode   string `json:"post_code"`
	Addr       string `json:"addr" binding:"required"`
	DetailAddr string `json:"detail_addr"`
	Tel        string `json:"tel" binding:"required"`
	Req        string `json:"req"`
	TotalPrice int    `json:"total_price" binding:"gte=0"`
}

type OrderItemRequest struct {
	IID   uint `json:"iid" binding:"required"`
	IOID  uint `json:"ioid" binding:"required"`
	Count int  `json:"count" binding:"required,gt=0"`
	Price int  `json:"price" binding:"gte=0"`
}

// ListOrders GET /api/v1/orders?email=
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email := c.Query("email")
	if email == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "이메일(email)이 필요합니다")
		return
	}

	orders, err := ctrl.orderService.ListOrders(email)
	if err != nil {
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"email": email,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns the order with its line items
// GET /api/v1/orders/:oid
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	oid, ok := parseIDParam(c, "oid")
	if !ok {
		return
	}

	detail, err := ctrl.orderService.GetOrderDetail(oid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, "order")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"oid": oid,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateOrder POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	order := &model.Order{
		OrderID:    orderID,
		Email:      req.Email,
		Name:       req.Name,
		PostCode:   req.PostCode,
		Addr:       req.Addr,
		DetailAddr: req.DetailAddr,
		Tel:        req.Tel,
		Req:        req.Req,
		TotalPrice: req.TotalPrice,
	}
	if err := ctrl.orderService.CreateOrder(order); err != nil {
		log.Error("Failed to create order", err, map[string]interface{}{
			"email":    req.Email,
			"order_id": orderID,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	// status and way are filled by the store
	if created, err := ctrl.orderService.GetOrder(order.OID); err == nil && created != nil {
		order = created
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// DeleteOrder DELETE /api/v1/orders/:oid
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	oid, ok := parseIDParam(c, "oid")
	if !ok {
		return
	}

	if err := ctrl.orderService.DeleteOrder(oid); err != nil {
		log.Error("Failed to delete order", err, map[string]interface{}{
			"oid": oid,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// AddOrderItem POST /api/v1/orders/:oid/items
func (ctrl *OrderController) AddOrderItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	oid, ok := parseIDParam(c, "oid")
	if !ok {
		return
	}
	var req OrderItemRequest
	if !bindJSON(c, &req) {
		return
	}

	orderItem := &model.OrderItem{
		OID:   oid,
		IID:   req.IID,
		IOID:  req.IOID,
		Count: req.Count,
		Price: req.Price,
	}
	if err := ctrl.orderService.AddOrderItem(orderItem); err != nil {
		log.Error("Failed to add order item", err, map[string]interface{}{
			"oid": oid,
			"iid": req.IID,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_item": orderItem})
}

// GetOrderItemDetails returns the display rows (item + option) of one line
// item; a deleted line item yields an empty list
// GET /api/v1/order-items/:oiid
func (ctrl *OrderController) GetOrderItemDetails(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	oiid, ok := parseIDParam(c, "oiid")
	if !ok {
		return
	}

	details, err := ctrl.orderService.GetOrderItemDetails(oiid)
	if err != nil {
		log.Error("Failed to fetch order item details", err, map[string]interface{}{
			"oiid": oiid,
		})
		apperrors.FromError(c, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": details,
		"count": len(details),
	})
}

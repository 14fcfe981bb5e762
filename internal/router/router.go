package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/config"
	"github.com/ikkim/ft-backend/internal/app/controller"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
)

type Router struct {
	boardController   *controller.BoardController
	itemController    *controller.ItemController
	orderController   *controller.OrderController
	paymentController *controller.PaymentController
	uploadController  *controller.UploadController
	config            *config.Config
}

func NewRouter(
	boardController *controller.BoardController,
	itemController *controller.ItemController,
	orderController *controller.OrderController,
	paymentController *controller.PaymentController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		boardController:   boardController,
		itemController:    itemController,
		orderController:   orderController,
		paymentController: paymentController,
		uploadController:  uploadController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(recoverWithJSON))
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "FT API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		boards := v1.Group("/boards")
		{
			boards.GET("", r.boardController.ListBoards)
			boards.GET("/:bid", r.boardController.GetBoard)
			boards.POST("", r.boardController.CreateBoard)
			boards.PUT("/:bid", r.boardController.UpdateBoard)
			boards.DELETE("/:bid", r.boardController.DeleteBoard)
		}

		items := v1.Group("/items")
		{
			items.GET("", r.itemController.ListItems)
			items.GET("/:iid", r.itemController.GetItem)
			items.POST("", r.itemController.CreateItem)
			items.PUT("/:iid", r.itemController.UpdateItem)
			items.DELETE("/:iid", r.itemController.DeleteItem)
			items.PUT("/:iid/sale", r.itemController.SaleItem)
			items.POST("/:iid/options", r.itemController.AddOption)
			items.POST("/:iid/tags", r.itemController.AddTag)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", r.orderController.ListOrders)
			orders.GET("/:oid", r.orderController.GetOrder)
			orders.POST("", r.orderController.CreateOrder)
			orders.DELETE("/:oid", r.orderController.DeleteOrder)
			orders.POST("/:oid/items", r.orderController.AddOrderItem)
		}

		v1.GET("/order-items/:oiid", r.orderController.GetOrderItemDetails)

		v1.POST("/payments/callback", r.paymentController.Callback)

		if r.uploadController != nil {
			v1.POST("/upload/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func recoverWithJSON(c *gin.Context, recovered interface{}) {
	log := middleware.GetLoggerFromContext(c)
	log.Error("Recovered from panic", fmt.Errorf("panic: %v", recovered), map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	apperrors.InternalError(c, "")
	c.Abort()
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Vary", "Origin")
				break
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Request-ID, X-Callback-Secret")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

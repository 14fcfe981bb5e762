package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/ft-backend/config"
	"github.com/ikkim/ft-backend/internal/app/controller"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/app/service"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/ikkim/ft-backend/internal/router"
	"github.com/ikkim/ft-backend/internal/storage"
	"github.com/ikkim/ft-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Log.Format == "console",
	})

	logger.Info("Starting FT Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db.GetDB())
	itemRepo := repository.NewItemRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Initialize services
	boardService := service.NewBoardService(boardRepo)
	itemService := service.NewItemService(itemRepo)
	orderService := service.NewOrderService(orderRepo)

	// Upload URLs are optional; the route is not registered without S3
	var uploadController *controller.UploadController
	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		logger.Warn("S3 storage unavailable, upload endpoint disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		uploadController = controller.NewUploadController(s3Storage)
	}

	if cfg.Payment.CallbackSecret == "" {
		if cfg.Payment.AllowUnsigned {
			logger.Warn("PAYMENT_CALLBACK_SECRET is empty, payment callbacks are not authenticated")
		} else {
			logger.Warn("PAYMENT_CALLBACK_SECRET is empty, payment callbacks will be rejected")
		}
	}

	r := router.NewRouter(
		controller.NewBoardController(boardService),
		controller.NewItemController(itemService),
		controller.NewOrderController(orderService),
		controller.NewPaymentController(orderService, cfg.Payment.CallbackSecret, cfg.Payment.AllowUnsigned),
		uploadController,
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}

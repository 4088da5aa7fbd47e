package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hallbooking/internal/app"
	"hallbooking/internal/config"
	"hallbooking/internal/middleware"
	"hallbooking/internal/modules/booking"
	"hallbooking/internal/modules/catalog"
	"hallbooking/internal/repository"
	"hallbooking/internal/seed"
)

func main() {
	cfg := config.Load()

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	roomRepo := repository.NewRoomRepository()
	bookingRepo := repository.NewBookingRepository()

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogService)
	bookingHandler := booking.NewHandler(bookingService)

	if cfg.SeedDemoData {
		if err := seed.Demo(context.Background(), catalogService, bookingService); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("demo data seeded")
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hall Booking App API")
	})

	root := r.Group("/")
	{
		catalogHandler.RegisterRoutes(root)
		bookingHandler.RegisterRoutes(root)
	}

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

package main

import (
	"log"

	"tracking-bridge/internal/app"
	"tracking-bridge/internal/core/config"
	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/core/server"
	trackinghandler "tracking-bridge/internal/features/tracking/handler"

	"go.uber.org/zap"
)

// @title Tracking Bridge API
// @version 1.0
// @description This API looks up LTL shipments by PRO number and returns a normalized tracking record.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("estes_credentials", cfg.Estes.User != "" && cfg.Estes.Password != ""),
	)

	trackingSvc, closeCache := app.NewTrackingService(cfg)
	defer closeCache()

	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc, trackinghandler.Options{
		RawBudgetBytes: cfg.RawBudgetBytes,
	})

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/api/track/:carrier", trackingHdl.Track)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "travel_backoffice/docs"
	request "travel_backoffice/internal/adapter/http/dto/request"
	"travel_backoffice/internal/adapter/http/routes"
	"travel_backoffice/internal/config"
	"travel_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Travel Back Office API
// @version         1.0
// @description     Travel packages, capacity-checked bookings and back-office users backed by DynamoDB and S3.

// @host localhost:3000

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := request.RegisterValidators(); err != nil {
		zl.Fatal("[main] registering request validators failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, zl); err != nil {
		zl.Fatal("[main] failed to startup the application", zap.Error(err))
	}
}

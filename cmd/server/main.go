package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"leafs-result-service/internal/config"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/server"
)

const appVersion = "dev"

func main() {
	// Best-effort: a missing .env just means real env vars are in charge.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "leafs-result-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

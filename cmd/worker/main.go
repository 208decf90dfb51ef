package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"files-manager/internal/config"
	"files-manager/internal/queue"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize worker: %v", err)
	}

	thumbnails := queue.NewThumbnailWorker(container.FileRepository, container.Storage, container.Logger)
	notifications := queue.NewNotificationWorker(container.UserRepository, container.Mailer, container.Logger)

	server := queue.NewServer(
		container.Config.RedisAddr(),
		container.Config.WorkerConcurrency,
		thumbnails,
		notifications,
		container.Logger,
	)

	go func() {
		if err := server.Run(); err != nil {
			container.Logger.Error("Worker failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down worker...")
	server.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	container.Close(ctx)

	container.Logger.Info("Worker exited")
}

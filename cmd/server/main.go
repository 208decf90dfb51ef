package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"files-manager/internal/config"
	"files-manager/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Handlers
	appHandler := handler.NewAppHandler(container.KVStore, container.Mongo, container.Logger)
	authHandler := handler.NewAuthHandler(container.SessionService, container.Logger)
	userHandler := handler.NewUserHandler(container.UserService, container.Logger)
	fileHandler := handler.NewFileHandler(container.FileService, container.Logger)
	authMiddleware := handler.NewAuthMiddleware(container.AuthService, container.Logger)

	// Router
	router := handler.NewRouter(appHandler, authHandler, userHandler, fileHandler, authMiddleware)

	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Server shutdown failed", err)
	}
	container.Close(ctx)

	container.Logger.Info("Server exited")
}

// Command main is the entry point for the Friendly API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"friendly/internal/config"
	"friendly/internal/database"
	"friendly/internal/seed"
	"friendly/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// A fresh development database gets demo content so the feed is never
	// empty on first run.
	if cfg.Env == "development" {
		if empty, err := seed.IsEmpty(database.DB); err != nil {
			log.Printf("Could not check for existing data: %v", err)
		} else if empty {
			if err := seed.Seed(database.DB, seed.Options{NumUsers: 10, NumPosts: 30}); err != nil {
				log.Printf("Development seeding failed: %v", err)
			}
		}
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		os.Exit(0)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

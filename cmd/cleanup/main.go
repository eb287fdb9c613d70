package main

import (
	"context"
	"log"
	"os"

	"dancestudio/internal/database"
	"dancestudio/internal/repository"
)

// One-shot purge of expired refresh tokens, for installs that prefer an
// external scheduler over the in-process hourly job.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	refreshRepo := repository.NewRefreshTokenRepository(db)
	n, err := refreshRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", n)
}

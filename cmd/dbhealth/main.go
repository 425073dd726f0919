package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	repo "github.com/flyercal-app/flyercal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		dbURL = "sqlite://flyercal.db"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.Default()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	n, err := entc.Event.Query().Count(ctx)
	if err != nil {
		log.Fatalf("counting events: %v", err)
	}
	log.Printf("events count: %d", n)
}

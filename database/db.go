package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"train-xchange/config"
)

const (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// Connect opens a PostgreSQL connection pool and waits until it answers
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection with retries
	for i := 0; i < maxRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			slog.Info("Successfully connected to database", "host", cfg.DBHost, "db", cfg.DBName)
			return db, nil
		}
		slog.Warn("Failed to connect to database", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

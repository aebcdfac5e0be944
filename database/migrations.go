package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"train-xchange/models"
)

const createListingsTable = `
	CREATE TABLE IF NOT EXISTS listings (
		id              INTEGER PRIMARY KEY,
		from_station    TEXT NOT NULL,
		to_station      TEXT NOT NULL,
		travel_date     DATE NOT NULL,
		departure_time  CHAR(5) NOT NULL,
		duration        TEXT NOT NULL,
		original_price  NUMERIC(10, 2) NOT NULL CHECK (original_price >= 0),
		price           NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		class           TEXT NOT NULL,
		fare_type       TEXT NOT NULL,
		seller_name     TEXT NOT NULL,
		seller_rating   NUMERIC(2, 1) NOT NULL,
		seller_avatar   TEXT NOT NULL,
		flexible        BOOLEAN NOT NULL DEFAULT false,
		position        SERIAL
	)
`

// RunMigrations ensures the listings table exists and seeds it with
// the given listings when it is empty
func RunMigrations(ctx context.Context, db *sql.DB, seed []models.Listing) error {
	slog.Info("Checking database schema...")

	if _, err := db.ExecContext(ctx, createListingsTable); err != nil {
		return fmt.Errorf("error creating listings table: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return fmt.Errorf("error counting listings: %w", err)
	}

	if count > 0 {
		slog.Info("Listings already present, skipping seed", "count", count)
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, l := range seed {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO listings (
				id, from_station, to_station, travel_date, departure_time, duration,
				original_price, price, class, fare_type,
				seller_name, seller_rating, seller_avatar, flexible
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`, l.ID, l.From, l.To, l.Date, l.Time, l.Duration,
			l.OriginalPrice, l.Price, l.Class, l.Type,
			l.Seller.Name, l.Seller.Rating, l.Seller.Avatar, l.Flexible)
		if err != nil {
			return fmt.Errorf("failed to seed listing %d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("Seeded listings table", "count", len(seed))
	return nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"train-xchange/models"
)

// ListingRepository reads the catalog from PostgreSQL
type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// All loads every listing in insertion order and validates the collection
func (r *ListingRepository) All(ctx context.Context) ([]models.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, from_station, to_station, travel_date, departure_time, duration,
			original_price, price, class, fare_type,
			seller_name, seller_rating, seller_avatar, flexible
		FROM listings
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		var travelDate time.Time

		err := rows.Scan(
			&l.ID, &l.From, &l.To, &travelDate, &l.Time, &l.Duration,
			&l.OriginalPrice, &l.Price, &l.Class, &l.Type,
			&l.Seller.Name, &l.Seller.Rating, &l.Seller.Avatar, &l.Flexible,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning listing: %w", err)
		}

		l.Date = travelDate.Format("2006-01-02")
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return models.NewCatalog(listings)
}

package fixtures

import (
	"context"
	"fmt"

	"train-xchange/models"
)

// Store serves the embedded catalog. It never changes after construction.
type Store struct {
	listings []models.Listing
}

// NewStore validates listings and wraps them in a Store
func NewStore(listings []models.Listing) (*Store, error) {
	catalog, err := models.NewCatalog(listings)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture catalog: %w", err)
	}
	return &Store{listings: catalog}, nil
}

// NewDefaultStore returns a Store over the seed listings
func NewDefaultStore() *Store {
	store, err := NewStore(Listings())
	if err != nil {
		panic(err)
	}
	return store
}

// All returns a copy of every listing in base order
func (s *Store) All(_ context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

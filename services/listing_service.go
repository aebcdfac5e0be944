package services

import (
	"context"
	"fmt"

	"train-xchange/logger"
	"train-xchange/models"
)

// ListingStore supplies the read-only listing collection in base order
type ListingStore interface {
	All(ctx context.Context) ([]models.Listing, error)
}

// ListingService answers catalog queries against a store
type ListingService struct {
	store ListingStore
}

// NewListingService creates a ListingService over store
func NewListingService(store ListingStore) *ListingService {
	return &ListingService{store: store}
}

// Search runs the filter and sort pipeline for criteria
func (s *ListingService) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Listing, error) {
	log := logger.FromContext(ctx).With("operation", "search", "criteria", criteria)

	listings, err := s.store.All(ctx)
	if err != nil {
		log.Error("Failed to load listings", "error", err)
		return nil, fmt.Errorf("error loading listings: %w", err)
	}

	results := Query(listings, criteria)
	log.Info("Search finished", "total", len(listings), "matched", len(results))

	return results, nil
}

// Get retrieves a listing by id
func (s *ListingService) Get(ctx context.Context, id int) (models.Listing, error) {
	listings, err := s.store.All(ctx)
	if err != nil {
		return models.Listing{}, fmt.Errorf("error loading listings: %w", err)
	}

	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Listing{}, fmt.Errorf("%w: %d", ErrListingNotFound, id)
}

// Select resolves a listing id to its confirmation. Nothing is reserved or
// purchased.
func (s *ListingService) Select(ctx context.Context, id int) (models.Selection, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return models.Selection{}, err
	}

	logger.FromContext(ctx).Info("Listing selected", "listing_id", l.ID, "price", l.Price)

	return models.Selection{
		Success: true,
		Message: SelectionMessage(l),
		Listing: l,
	}, nil
}

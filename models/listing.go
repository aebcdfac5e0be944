package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidListing     = errors.New("invalid listing")
	ErrDuplicateListingID = errors.New("duplicate listing id")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Seller is held by value on every listing
type Seller struct {
	Name   string  `json:"name" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
	Avatar string  `json:"avatar" validate:"len=1"`
}

// Listing represents a single resold train ticket
type Listing struct {
	ID            int     `json:"id" validate:"gt=0"`
	From          string  `json:"from" validate:"required"`
	To            string  `json:"to" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string  `json:"time" validate:"required,len=5,datetime=15:04"`
	Duration      string  `json:"duration" validate:"required"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	Price         float64 `json:"price" validate:"gte=0"`
	Class         string  `json:"class" validate:"required"`
	Type          string  `json:"type" validate:"required"`
	Seller        Seller  `json:"seller"`
	Flexible      bool    `json:"flexible"`
}

// Validate checks the field shapes of a listing. Sale price above the
// original price is allowed.
func (l Listing) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w %d: %v", ErrInvalidListing, l.ID, err)
	}
	return nil
}

// NewListing returns l if it is well formed
func NewListing(l Listing) (Listing, error) {
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// NewCatalog validates every listing and the uniqueness of their ids.
// The returned slice is a copy in the original order.
func NewCatalog(listings []Listing) ([]Listing, error) {
	seen := make(map[int]struct{}, len(listings))
	catalog := make([]Listing, 0, len(listings))

	var errs []error
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := seen[l.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateListingID, l.ID))
			continue
		}
		seen[l.ID] = struct{}{}
		catalog = append(catalog, l)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return catalog, nil
}

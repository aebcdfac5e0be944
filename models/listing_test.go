package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListing() Listing {
	return Listing{
		ID: 7, From: "York", To: "Leeds",
		Date: "2024-09-01", Time: "07:05", Duration: "25m",
		OriginalPrice: 20, Price: 12,
		Class: "Standard", Type: "Anytime",
		Seller: Seller{Name: "Ana P.", Rating: 5, Avatar: "A"},
	}
}

func TestNewListing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Listing)
		wantErr bool
	}{
		{name: "valid", mutate: func(l *Listing) {}},
		{name: "sale above original is allowed", mutate: func(l *Listing) { l.Price = 30 }},
		{name: "zero original price is allowed", mutate: func(l *Listing) { l.OriginalPrice = 0; l.Price = 0 }},
		{name: "multi-byte avatar", mutate: func(l *Listing) { l.Seller.Avatar = "É" }},
		{name: "missing origin", mutate: func(l *Listing) { l.From = "" }, wantErr: true},
		{name: "bad date", mutate: func(l *Listing) { l.Date = "25/08/2024" }, wantErr: true},
		{name: "unpadded time", mutate: func(l *Listing) { l.Time = "9:15" }, wantErr: true},
		{name: "time out of range", mutate: func(l *Listing) { l.Time = "25:00" }, wantErr: true},
		{name: "negative price", mutate: func(l *Listing) { l.Price = -1 }, wantErr: true},
		{name: "rating above five", mutate: func(l *Listing) { l.Seller.Rating = 5.1 }, wantErr: true},
		{name: "two character avatar", mutate: func(l *Listing) { l.Seller.Avatar = "AP" }, wantErr: true},
		{name: "zero id", mutate: func(l *Listing) { l.ID = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(&l)

			got, err := NewListing(l)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidListing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, l, got)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	a := validListing()
	b := validListing()
	b.ID = 8

	catalog, err := NewCatalog([]Listing{a, b})
	require.NoError(t, err)
	assert.Equal(t, []Listing{a, b}, catalog)

	_, err = NewCatalog([]Listing{a, b, a})
	assert.ErrorIs(t, err, ErrDuplicateListingID)

	bad := validListing()
	bad.ID = 9
	bad.Date = ""
	_, err = NewCatalog([]Listing{a, bad})
	assert.ErrorIs(t, err, ErrInvalidListing)

	empty, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

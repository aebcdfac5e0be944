package services

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-xchange/fixtures"
	"train-xchange/models"
)

func ids(listings []models.Listing) []int {
	out := make([]int, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	listings := fixtures.Listings()

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		want     []int
	}{
		{
			name:     "empty criteria keeps every listing in order",
			criteria: models.SearchCriteria{},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "origin matches case-insensitive substring",
			criteria: models.SearchCriteria{From: "LONDON"},
			want:     []int{1},
		},
		{
			name:     "origin and price ceiling",
			criteria: models.SearchCriteria{From: "london", MaxPrice: 100},
			want:     []int{1},
		},
		{
			name:     "destination and price ceiling",
			criteria: models.SearchCriteria{To: "london", MaxPrice: 100},
			want:     []int{4, 5, 6},
		},
		{
			name:     "destination substring in the middle of a name",
			criteria: models.SearchCriteria{To: "euston"},
			want:     []int{2, 4, 5},
		},
		{
			name:     "date is an exact match",
			criteria: models.SearchCriteria{Date: "2024-08-25"},
			want:     []int{1, 4},
		},
		{
			name:     "date does not match by prefix",
			criteria: models.SearchCriteria{Date: "2024-08"},
			want:     []int{},
		},
		{
			name:     "price ceiling is inclusive",
			criteria: models.SearchCriteria{MaxPrice: 72},
			want:     []int{1, 4, 6},
		},
		{
			name:     "zero price ceiling is no constraint",
			criteria: models.SearchCriteria{MaxPrice: 0},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "negative price ceiling is no constraint",
			criteria: models.SearchCriteria{MaxPrice: -10},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "NaN price ceiling is no constraint",
			criteria: models.SearchCriteria{MaxPrice: math.NaN()},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "passengers does not affect matching",
			criteria: models.SearchCriteria{Passengers: 40},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "no match yields an empty sequence",
			criteria: models.SearchCriteria{From: "Nonexistent Station"},
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(listings, tt.criteria)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterMatchesEveryCriterion(t *testing.T) {
	listings := fixtures.Listings()
	criteria := []models.SearchCriteria{
		{From: "on"},
		{To: "london", Date: "2024-08-26"},
		{From: "l", To: "a", MaxPrice: 100},
		{Date: "2024-08-29", MaxPrice: 50},
	}

	for _, c := range criteria {
		got := Filter(listings, c)
		kept := map[int]bool{}
		for _, l := range got {
			kept[l.ID] = true
		}
		for _, l := range listings {
			match := (c.From == "" || containsFold(l.From, c.From)) &&
				(c.To == "" || containsFold(l.To, c.To)) &&
				(c.Date == "" || l.Date == c.Date) &&
				(c.MaxPrice <= 0 || l.Price <= c.MaxPrice)
			assert.Equal(t, match, kept[l.ID], "listing %d with %+v", l.ID, c)
		}
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestSort(t *testing.T) {
	listings := fixtures.Listings()

	tests := []struct {
		key  models.SortKey
		want []int
	}{
		{key: models.SortByPrice, want: []int{4, 1, 6, 5, 2, 3}},
		{key: models.SortByTime, want: []int{5, 1, 3, 6, 2, 4}},
		{key: models.SortByDate, want: []int{1, 4, 2, 3, 5, 6}},
		{key: "seller", want: []int{1, 2, 3, 4, 5, 6}},
		{key: "", want: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := Sort(listings, tt.key)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, ids(got), ids(Sort(got, tt.key)), "sorting twice must be idempotent")
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	listings := fixtures.Listings()
	Sort(listings, models.SortByPrice)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(listings))
}

func TestSortIsStable(t *testing.T) {
	listings := []models.Listing{
		{ID: 10, Price: 50, Time: "10:00", Date: "2024-09-01"},
		{ID: 11, Price: 20, Time: "09:00", Date: "2024-09-01"},
		{ID: 12, Price: 50, Time: "10:00", Date: "2024-08-31"},
		{ID: 13, Price: 20, Time: "09:00", Date: "2024-09-01"},
		{ID: 14, Price: 50, Time: "08:00", Date: "2024-09-01"},
	}

	assert.Equal(t, []int{11, 13, 10, 12, 14}, ids(Sort(listings, models.SortByPrice)))
	assert.Equal(t, []int{14, 11, 13, 10, 12}, ids(Sort(listings, models.SortByTime)))
	assert.Equal(t, []int{12, 10, 11, 13, 14}, ids(Sort(listings, models.SortByDate)))
}

func TestSortEmpty(t *testing.T) {
	got := Sort(nil, models.SortByPrice)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuery(t *testing.T) {
	got := Query(fixtures.Listings(), models.SearchCriteria{
		To:       "London",
		MaxPrice: 130,
		SortBy:   models.SortByTime,
	})
	assert.Equal(t, []int{5, 6, 2, 4}, ids(got))
}

func TestCalculateSavings(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		sale     float64
		want     models.Savings
	}{
		{
			name:     "fixture fare",
			original: 89.50,
			sale:     65.00,
			want:     models.Savings{Amount: 24.50, Percentage: 27, Applicable: true},
		},
		{
			name:     "no discount",
			original: 40,
			sale:     40,
			want:     models.Savings{Amount: 0, Percentage: 0, Applicable: true},
		},
		{
			name:     "sale above original is negative, not clamped",
			original: 50,
			sale:     60,
			want:     models.Savings{Amount: -10, Percentage: -20, Applicable: true},
		},
		{
			name:     "half percent rounds up",
			original: 200,
			sale:     199,
			want:     models.Savings{Amount: 1, Percentage: 1, Applicable: true},
		},
		{
			name:     "negative half percent rounds towards positive infinity",
			original: 200,
			sale:     201,
			want:     models.Savings{Amount: -1, Percentage: 0, Applicable: true},
		},
		{
			name:     "zero original price has no percentage",
			original: 0,
			sale:     10,
			want:     models.Savings{Amount: -10, Percentage: 0, Applicable: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSavings(tt.original, tt.sale)
			assert.InDelta(t, tt.want.Amount, got.Amount, 1e-9)
			assert.Equal(t, tt.want.Percentage, got.Percentage)
			assert.Equal(t, tt.want.Applicable, got.Applicable)
		})
	}
}

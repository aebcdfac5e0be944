package services

import (
	"math"
	"slices"
	"strings"
	"time"

	"train-xchange/models"
)

// Filter returns the listings matching every non-empty criterion, in their
// original relative order. Passengers does not take part in matching.
func Filter(listings []models.Listing, criteria models.SearchCriteria) []models.Listing {
	from := strings.ToLower(criteria.From)
	to := strings.ToLower(criteria.To)

	result := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if from != "" && !strings.Contains(strings.ToLower(l.From), from) {
			continue
		}
		if to != "" && !strings.Contains(strings.ToLower(l.To), to) {
			continue
		}
		if criteria.Date != "" && l.Date != criteria.Date {
			continue
		}
		if hasPriceCeiling(criteria.MaxPrice) && l.Price > criteria.MaxPrice {
			continue
		}
		result = append(result, l)
	}
	return result
}

// hasPriceCeiling treats zero, negative and NaN ceilings as unset
func hasPriceCeiling(maxPrice float64) bool {
	return maxPrice > 0 && !math.IsNaN(maxPrice)
}

// Sort returns a stably sorted copy of listings. Unknown keys return the
// copy in input order.
func Sort(listings []models.Listing, key models.SortKey) []models.Listing {
	sorted := slices.Clone(listings)
	if sorted == nil {
		sorted = []models.Listing{}
	}

	switch key {
	case models.SortByPrice:
		slices.SortStableFunc(sorted, func(a, b models.Listing) int {
			return compareFloat(a.Price, b.Price)
		})
	case models.SortByTime:
		// HH:MM is enforced at construction, so string order is clock order.
		slices.SortStableFunc(sorted, func(a, b models.Listing) int {
			return strings.Compare(a.Time, b.Time)
		})
	case models.SortByDate:
		slices.SortStableFunc(sorted, func(a, b models.Listing) int {
			return compareDate(a.Date, b.Date)
		})
	}
	return sorted
}

// Query filters listings and sorts the result by criteria.SortBy
func Query(listings []models.Listing, criteria models.SearchCriteria) []models.Listing {
	return Sort(Filter(listings, criteria), criteria.SortBy)
}

// CalculateSavings compares the sale price with the original fare. A zero
// original price yields a percentage of 0 and Applicable=false.
func CalculateSavings(originalPrice, salePrice float64) models.Savings {
	amount := originalPrice - salePrice
	if originalPrice == 0 {
		return models.Savings{Amount: amount}
	}
	return models.Savings{
		Amount:     amount,
		Percentage: int(roundHalfUp(100 * amount / originalPrice)),
		Applicable: true,
	}
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDate(a, b string) int {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}

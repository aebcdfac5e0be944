package models

// Savings is what a buyer saves against the original fare.
// Applicable is false when the original price is zero.
type Savings struct {
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Applicable bool    `json:"applicable"`
}

// ListingCard is the display fragment for one listing
type ListingCard struct {
	Listing       Listing `json:"listing"`
	Route         string  `json:"route"`
	Journey       string  `json:"journey"`
	PriceLabel    string  `json:"price_label"`
	OriginalLabel string  `json:"original_label"`
	Savings       Savings `json:"savings"`
	SavingsLabel  string  `json:"savings_label"`
	RatingStars   string  `json:"rating_stars"`
}

// SearchResponse is returned by the search endpoints
type SearchResponse struct {
	Criteria SearchCriteria `json:"criteria"`
	Count    int            `json:"count"`
	Listings []ListingCard  `json:"listings"`
}

// Selection is the confirmation shown when a buyer picks a listing.
// No purchase takes place.
type Selection struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Listing Listing `json:"listing"`
}

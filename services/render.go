package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"train-xchange/models"
)

const (
	dateLayout        = "2006-01-02"
	displayDateLayout = "Mon, 2 Jan 2006"
)

// FormatPrice renders an amount in pounds with two decimals
func FormatPrice(price float64) string {
	return fmt.Sprintf("£%.2f", price)
}

// FormatDate renders a YYYY-MM-DD date the way en-GB short dates read,
// e.g. "Sun, 25 Aug 2024". Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}

// RatingStars renders one star per whole rating point followed by the rating
func RatingStars(rating float64) string {
	n := int(math.Floor(rating))
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%s %g", strings.Repeat("★", n), rating)
}

// RenderCard maps a listing to its display fragment
func RenderCard(l models.Listing) models.ListingCard {
	savings := CalculateSavings(l.OriginalPrice, l.Price)

	savingsLabel := FormatPrice(savings.Amount)
	if savings.Applicable {
		savingsLabel = fmt.Sprintf("%s (%d%%)", savingsLabel, savings.Percentage)
	}

	return models.ListingCard{
		Listing:       l,
		Route:         fmt.Sprintf("%s → %s", l.From, l.To),
		Journey:       fmt.Sprintf("%s • %s • %s", FormatDate(l.Date), l.Time, l.Duration),
		PriceLabel:    FormatPrice(l.Price),
		OriginalLabel: FormatPrice(l.OriginalPrice),
		Savings:       savings,
		SavingsLabel:  savingsLabel,
		RatingStars:   RatingStars(l.Seller.Rating),
	}
}

// RenderCards maps listings to cards keeping their order
func RenderCards(listings []models.Listing) []models.ListingCard {
	cards := make([]models.ListingCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, RenderCard(l))
	}
	return cards
}

// SelectionMessage is the confirmation text for a chosen listing
func SelectionMessage(l models.Listing) string {
	return fmt.Sprintf("You selected the ticket from %s to %s for %s.", l.From, l.To, FormatPrice(l.Price))
}

package services

import (
	"strings"

	"train-xchange/models"
)

const (
	// MinSuggestionQuery is the shortest input that produces suggestions
	MinSuggestionQuery = 2
	// MaxSuggestions caps the autocomplete list
	MaxSuggestions = 5
)

// SuggestStations returns up to limit stations whose name contains query,
// case-insensitively, in station list order. Queries shorter than
// MinSuggestionQuery runes yield no suggestions.
func SuggestStations(stations []models.Station, query string, limit int) []models.Station {
	suggestions := []models.Station{}
	if len([]rune(query)) < MinSuggestionQuery || limit <= 0 {
		return suggestions
	}

	q := strings.ToLower(query)
	for _, s := range stations {
		if strings.Contains(strings.ToLower(s.Name), q) {
			suggestions = append(suggestions, s)
			if len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}

package models

// SortKey selects the ordering of search results
type SortKey string

const (
	SortByPrice SortKey = "price"
	SortByTime  SortKey = "time"
	SortByDate  SortKey = "date"
)

// DefaultMaxPrice is the ceiling of the price slider
const DefaultMaxPrice = 500

// SearchCriteria is one query against the catalog. The zero value of every
// field means "no constraint". Passengers is carried through but does not
// affect which listings match.
type SearchCriteria struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Date       string  `json:"date"`
	Passengers int     `json:"passengers"`
	MaxPrice   float64 `json:"max_price"`
	SortBy     SortKey `json:"sort_by"`
}

// DefaultCriteria is the state of a fresh or cleared search form
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Passengers: 1,
		MaxPrice:   DefaultMaxPrice,
		SortBy:     SortByPrice,
	}
}

// CriteriaUpdate carries the fields changed by one interaction. Nil fields
// keep their current value.
type CriteriaUpdate struct {
	From       *string  `json:"from,omitempty"`
	To         *string  `json:"to,omitempty"`
	Date       *string  `json:"date,omitempty"`
	Passengers *int     `json:"passengers,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	SortBy     *SortKey `json:"sort_by,omitempty"`
}

// Apply returns a copy of c with the update applied
func (c SearchCriteria) Apply(u CriteriaUpdate) SearchCriteria {
	next := c
	if u.From != nil {
		next.From = *u.From
	}
	if u.To != nil {
		next.To = *u.To
	}
	if u.Date != nil {
		next.Date = *u.Date
	}
	if u.Passengers != nil {
		next.Passengers = *u.Passengers
	}
	if u.MaxPrice != nil {
		next.MaxPrice = *u.MaxPrice
	}
	if u.SortBy != nil {
		next.SortBy = *u.SortBy
	}
	return next
}

// CriteriaChange is sent by a client when one form control changes. The
// client owns Current and replaces it with the criteria it gets back.
type CriteriaChange struct {
	Current SearchCriteria `json:"current"`
	Update  CriteriaUpdate `json:"update"`
}

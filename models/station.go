package models

// Station represents a train station offered by autocomplete
type Station struct {
	Name string `json:"name"`
}

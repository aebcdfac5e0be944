package handlers

import (
	"train-xchange/models"
	"train-xchange/services"
)

// Handler serves the catalog API
type Handler struct {
	listings *services.ListingService
	stations []models.Station
}

func NewHandler(listings *services.ListingService, stations []models.Station) *Handler {
	return &Handler{listings: listings, stations: stations}
}

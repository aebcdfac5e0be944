package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"train-xchange/services"
)

// GetStations returns autocomplete suggestions for ?q=, or every station
// when q is empty
func (h *Handler) GetStations(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, h.stations)
		return
	}

	c.JSON(http.StatusOK, services.SuggestStations(h.stations, q, services.MaxSuggestions))
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"train-xchange/logger"
	"train-xchange/models"
	"train-xchange/services"
)

// ListListings filters and sorts the catalog from query parameters
func (h *Handler) ListListings(c *gin.Context) {
	criteria := services.ParseCriteria(c.Request.URL.Query())
	h.respondSearch(c, criteria)
}

// SearchListings runs a query from a JSON criteria body. Malformed fields
// are dropped the same way ListListings drops malformed query parameters.
func (h *Handler) SearchListings(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	criteria, err := services.DecodeCriteria(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondSearch(c, criteria)
}

// ChangeCriteria applies one form change to the client's criteria and
// answers with the new criteria and its results
func (h *Handler) ChangeCriteria(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	change, err := services.DecodeCriteriaChange(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondSearch(c, change.Current.Apply(change.Update))
}

// DefaultCriteria returns the criteria of a cleared search form
func (h *Handler) DefaultCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultCriteria())
}

func (h *Handler) respondSearch(c *gin.Context, criteria models.SearchCriteria) {
	results, err := h.listings.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search listings"})
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Criteria: criteria,
		Count:    len(results),
		Listings: services.RenderCards(results),
	})
}

// GetListing returns one listing card by id
func (h *Handler) GetListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	listing, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.RenderCard(listing))
}

// SelectListing confirms the buyer's choice of a listing
func (h *Handler) SelectListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	selection, err := h.listings.Select(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, selection)
}

func listingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return 0, false
	}
	return id, true
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrListingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}
	logger.FromContext(c.Request.Context()).Error("Error getting listing", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
}

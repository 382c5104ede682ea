package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenfinance/internal/rates"
)

// RateHandler serves the current base/display exchange rate. The route is
// public: clients need the rate before anyone signs in.
type RateHandler struct {
	fetcher *rates.Fetcher
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(fetcher *rates.Fetcher) *RateHandler {
	return &RateHandler{fetcher: fetcher}
}

// GetRate returns the current exchange rate
// @Summary     Get exchange rate
// @Description Get how many base currency units one display currency unit is worth
// @Tags        rates
// @Produce     json
// @Success     200 {object} map[string]float64 "Rate"
// @Router      /rates [get]
func (h *RateHandler) GetRate(c *gin.Context) {
	rate := h.fetcher.Fetch(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"rate": rate})
}

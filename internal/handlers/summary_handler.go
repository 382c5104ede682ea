package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "zenfinance/internal/errors"
	"zenfinance/internal/models"
	"zenfinance/internal/report"
	"zenfinance/internal/services"
)

// SummaryHandler handles aggregate view requests
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryResponse wraps the balance card data.
type SummaryResponse struct {
	Summary *services.Summary `json:"summary"`
}

// CategoryBreakdownResponse wraps the chart groups.
type CategoryBreakdownResponse struct {
	Categories []report.CategorySum `json:"categories"`
}

// parsePeriod reads the period query parameter, defaulting to "all".
func parsePeriod(c *gin.Context) (report.Period, error) {
	period := report.Period(c.DefaultQuery("period", string(report.PeriodAll)))
	if !period.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be one of all, day, week, month")
	}
	return period, nil
}

// GetSummary returns income/expense totals and balance for a period
// @Summary     Get balance summary
// @Description Get income and expense totals and the balance for the chosen period
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (all/day/week/month)"
// @Success     200 {object} SummaryResponse "Summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetSummary(userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}

// GetCategoryBreakdown returns chart groups per category for a period
// @Summary     Get category breakdown
// @Description Get per-category sums for the chart, sorted descending
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (all/day/week/month)"
// @Param       view query string false "Transaction type to chart (income/expense)"
// @Success     200 {object} CategoryBreakdownResponse "Category groups"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/categories [get]
func (h *SummaryHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// The chart's type toggle is independent of the history tab.
	view := models.TransactionType(c.DefaultQuery("view", string(models.TransactionTypeExpense)))

	groups, err := h.summaryService.GetCategoryBreakdown(userID, period, view)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{Categories: groups})
}

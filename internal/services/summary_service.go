package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "zenfinance/internal/errors"
	"zenfinance/internal/models"
	"zenfinance/internal/report"
)

// summaryService computes aggregate views over a user's rows by loading
// them and applying the report package's pure functions. The working set is
// one user's history, small enough that in-memory aggregation beats
// pushing month-of-year arithmetic into dialect-specific SQL.
type summaryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db, now: time.Now}
}

// GetSummary returns income/expense totals and balance for the period.
// Totals are computed over the period-filtered set only, independent of
// any type tab, so both cards are always available side by side.
func (s *summaryService) GetSummary(userID string, period report.Period) (*Summary, error) {
	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterPeriod(txs, period, s.now())
	totals := report.SumTotals(filtered)

	return &Summary{
		Period:  period,
		Totals:  totals,
		Balance: totals.Balance(),
		Count:   len(filtered),
	}, nil
}

// GetCategoryBreakdown returns the chart groups for the period and view
// type, sorted descending by summed amount.
func (s *summaryService) GetCategoryBreakdown(userID string, period report.Period, view models.TransactionType) ([]report.CategorySum, error) {
	if !view.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	txs, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterPeriod(txs, period, s.now())
	return report.AggregateByCategory(filtered, view), nil
}

func (s *summaryService) loadTransactions(userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

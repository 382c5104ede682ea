// Package report computes derived views over transaction collections:
// period and type filtering, income/expense totals, per-category
// aggregation for charting, and display-currency projection. Everything
// here is a pure function over data already held in memory.
package report

import (
	"math"
	"sort"
	"time"

	"zenfinance/internal/models"
)

// Period selects the time window a transaction list is filtered to.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodAll, PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Tab selects which transaction types the history list shows.
type Tab string

const (
	TabAll     Tab = "all"
	TabIncome  Tab = "income"
	TabExpense Tab = "expense"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabAll, TabIncome, TabExpense:
		return true
	}
	return false
}

// InPeriod reports whether a transaction created at ts falls inside the
// period relative to now.
//
// "day" means the same calendar date as now. "week" is a rolling window of
// the last 7 days. "month" compares month-of-year only and deliberately
// ignores the year, matching the behavior this filter has always had.
func InPeriod(ts time.Time, period Period, now time.Time) bool {
	switch period {
	case PeriodDay:
		y1, m1, d1 := ts.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeek:
		return !ts.Before(now.AddDate(0, 0, -7))
	case PeriodMonth:
		return ts.Month() == now.Month()
	default:
		return true
	}
}

// FilterPeriod returns the transactions created inside the period relative
// to now, preserving input order. period=all returns the input unchanged.
func FilterPeriod(txs []models.Transaction, period Period, now time.Time) []models.Transaction {
	if period == PeriodAll || period == "" {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if InPeriod(tx.CreatedAt, period, now) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterType returns the transactions matching the tab, preserving input
// order. tab=all returns the input unchanged.
func FilterType(txs []models.Transaction, tab Tab) []models.Transaction {
	if tab == TabAll || tab == "" {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if string(tx.Type) == string(tab) {
			out = append(out, tx)
		}
	}
	return out
}

// Totals holds the income and expense sums for a transaction set.
// Both are always computed regardless of the active type tab, so income
// and expense cards can be shown side by side.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Balance returns income minus expense.
func (t Totals) Balance() float64 { return t.Income - t.Expense }

// SumTotals computes income and expense totals over txs.
func SumTotals(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income += tx.Amount
		case models.TransactionTypeExpense:
			t.Expense += tx.Amount
		}
	}
	return t
}

// CategorySum is one slice of the category chart: a category name and the
// summed absolute amount of its transactions.
type CategorySum struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AggregateByCategory groups the transactions of the given type by category
// name, summing absolute amounts per group, and returns the groups sorted
// descending by sum. Zero amounts are skipped. Ties keep first-encountered
// order.
func AggregateByCategory(txs []models.Transaction, view models.TransactionType) []CategorySum {
	var groups []CategorySum
	index := make(map[string]int)

	for _, tx := range txs {
		if tx.Type != view {
			continue
		}
		amount := math.Abs(tx.Amount)
		if amount == 0 {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			groups[i].Value += amount
			continue
		}
		index[tx.Category] = len(groups)
		groups = append(groups, CategorySum{Name: tx.Category, Value: amount})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})
	return groups
}

package services

import (
	"testing"
	"time"

	"zenfinance/internal/models"
	"zenfinance/internal/report"
	"zenfinance/internal/testutil"

	"gorm.io/gorm"
)

// newSummaryServiceAt builds a summary service with a pinned clock.
func newSummaryServiceAt(db *gorm.DB, now time.Time) *summaryService {
	return &summaryService{db: db, now: func() time.Time { return now }}
}

func createTransactionAt(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount float64, category string, createdAt time.Time) {
	t.Helper()
	tx := testutil.CreateTestTransaction(t, db, userID, txType, amount, category)
	if err := db.Model(tx).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate transaction: %v", err)
	}
}

func TestGetSummary(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("all_period_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeIncome, 500, "Salary", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 120, "Food", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 80, "Taxi", now.AddDate(0, 0, -1))

		summary, err := svc.GetSummary(user.ID, report.PeriodAll)
		testutil.AssertNoError(t, err)

		if summary.Totals.Income != 500 {
			t.Errorf("expected income 500, got %f", summary.Totals.Income)
		}
		if summary.Totals.Expense != 200 {
			t.Errorf("expected expense 200, got %f", summary.Totals.Expense)
		}
		if summary.Balance != 300 {
			t.Errorf("expected balance 300, got %f", summary.Balance)
		}
		if summary.Count != 3 {
			t.Errorf("expected count 3, got %d", summary.Count)
		}
	})

	t.Run("day_period_excludes_yesterday", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 100, "Food", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 40, "Food", now.AddDate(0, 0, -1))

		summary, err := svc.GetSummary(user.ID, report.PeriodDay)
		testutil.AssertNoError(t, err)

		if summary.Totals.Expense != 100 {
			t.Errorf("expected only today's expense, got %f", summary.Totals.Expense)
		}
		if summary.Count != 1 {
			t.Errorf("expected count 1, got %d", summary.Count)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 100, "Food", now)
		createTransactionAt(t, db, other.ID, models.TransactionTypeExpense, 999, "Food", now)

		summary, err := svc.GetSummary(user.ID, report.PeriodAll)
		testutil.AssertNoError(t, err)

		if summary.Totals.Expense != 100 {
			t.Errorf("expected only own rows, got expense %f", summary.Totals.Expense)
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		summary, err := svc.GetSummary(user.ID, report.PeriodAll)
		testutil.AssertNoError(t, err)

		if summary.Balance != 0 || summary.Count != 0 {
			t.Errorf("expected empty summary, got %+v", summary)
		}
	})
}

func TestGetCategoryBreakdown(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("groups_sorted_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 30, "A", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 10, "B", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 20, "A", now)

		groups, err := svc.GetCategoryBreakdown(user.ID, report.PeriodAll, models.TransactionTypeExpense)
		testutil.AssertNoError(t, err)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Name != "A" || groups[0].Value != 50 {
			t.Errorf("expected {A 50}, got %+v", groups[0])
		}
		if groups[1].Name != "B" || groups[1].Value != 10 {
			t.Errorf("expected {B 10}, got %+v", groups[1])
		}
	})

	t.Run("view_independent_of_other_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeIncome, 500, "Salary", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 30, "Food", now)

		groups, err := svc.GetCategoryBreakdown(user.ID, report.PeriodAll, models.TransactionTypeIncome)
		testutil.AssertNoError(t, err)

		if len(groups) != 1 || groups[0].Name != "Salary" {
			t.Fatalf("expected only Salary, got %v", groups)
		}
	})

	t.Run("period_filter_applies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 30, "Food", now)
		createTransactionAt(t, db, user.ID, models.TransactionTypeExpense, 99, "Food", now.AddDate(0, -2, 0))

		groups, err := svc.GetCategoryBreakdown(user.ID, report.PeriodMonth, models.TransactionTypeExpense)
		testutil.AssertNoError(t, err)

		if len(groups) != 1 || groups[0].Value != 30 {
			t.Fatalf("expected only this month's 30, got %v", groups)
		}
	})

	t.Run("invalid_view", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := newSummaryServiceAt(db, now)

		_, err := svc.GetCategoryBreakdown(user.ID, report.PeriodAll, models.TransactionType("transfer"))
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

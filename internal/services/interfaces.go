package services

import (
	"zenfinance/internal/models"
	"zenfinance/internal/pagination"
	"zenfinance/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, icon string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type *models.TransactionType
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, amount float64, category string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// Summary contains the balance card data for one period.
type Summary struct {
	Period  report.Period `json:"period"`
	Totals  report.Totals `json:"totals"`
	Balance float64       `json:"balance"`
	Count   int           `json:"count"`
}

// SummaryServicer defines the contract for aggregate views over a user's rows.
type SummaryServicer interface {
	GetSummary(userID string, period report.Period) (*Summary, error)
	GetCategoryBreakdown(userID string, period report.Period, view models.TransactionType) ([]report.CategorySum, error)
}

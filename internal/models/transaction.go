package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the closed income/expense set.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a financial transaction in the system.
//
// Amount is always stored in the base currency; conversion to a display
// currency happens at render time and is never persisted. Category holds a
// denormalized copy of the category name at the time of creation. It is a
// plain label, not a foreign key: deleting a category leaves historical
// transactions untouched, and only the dedicated category rename path
// rewrites it in bulk.
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount   float64         `gorm:"not null" json:"amount"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Category string          `gorm:"not null" json:"category"`
}

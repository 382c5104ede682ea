package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryIcon is shown for categories created without an icon.
const DefaultCategoryIcon = "📦"

// Category represents a transaction category. A category belongs to exactly
// one transaction type; pickers only ever offer categories matching the
// transaction's chosen type.
type Category struct {
	Base
	UserID string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string       `gorm:"not null" json:"name"`
	Icon   string       `json:"icon"`
	Type   CategoryType `gorm:"not null" json:"type"`
}

package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeSavings    TransactionType = "savings"
	TransactionTypeInvestment TransactionType = "investment"
)

// Transaction represents a financial transaction recorded by a user.
// Amount is stored in minor currency units (paise). The advisory core
// never mutates transactions; it only aggregates them. Rows with negative
// amounts or types outside the four constants above are a caller contract
// violation and are not defended against.
type Transaction struct {
	Base
	UserID      string          `gorm:"not null;index" json:"user_id"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// Category groups transactions for per-category spend analysis.
type Category struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

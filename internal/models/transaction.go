package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense record. Records are
// immutable once created: there is no update operation, only deletion.
//
// Date is the user-entered calendar date and drives all time bucketing
// and filtering. CreatedAt is the store-assigned creation timestamp and
// is used only for default ordering (newest first).
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
}

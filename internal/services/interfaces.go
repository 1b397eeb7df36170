package services

import (
	"time"

	"duitku/internal/models"
	"duitku/internal/stats"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID, name, avatarURL string) (*models.User, error)
}

// TransactionServicer defines the contract for transaction storage and
// the aggregated views derived from a user's transaction list.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, amount int64, category, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, filter stats.Filter) ([]models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error

	GetSummary(userID string) (stats.Summary, error)
	GetMonthlySeries(userID string, now time.Time, timeRange stats.TimeRange) ([]stats.MonthBucket, error)
	GetCategoryBreakdown(userID string, txType models.TransactionType) ([]stats.CategoryTotal, error)
}

package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"duitku/internal/catalog"
	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/stats"
)

// ListLimit is the hard cap on how many transactions a single load
// returns. Every read loads at most this many records, newest first;
// there is no pagination beyond it.
const ListLimit = 100

// transactionService handles transaction storage and aggregation reads.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and persists a new transaction. The store
// assigns the ID and creation timestamp. A zero date defaults to now.
func (s *transactionService) CreateTransaction(
	userID string,
	txType models.TransactionType,
	amount int64,
	category string,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if userID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user ID is required")
	}
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !catalog.Valid(txType, category) {
		return nil, apperrors.ErrUnknownCategory
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions returns the user's transactions matching the
// filter, newest created first, capped at ListLimit records. An empty
// user ID collapses to an empty list rather than an error. The type
// condition is pushed into the query; the remaining conditions are
// applied in memory over the capped list.
func (s *transactionService) GetUserTransactions(userID string, filter stats.Filter) ([]models.Transaction, error) {
	if userID == "" {
		return []models.Transaction{}, nil
	}

	q := s.db.Where("user_id = ?", userID)
	if filter.Type != "" && filter.Type != stats.All {
		q = q.Where("type = ?", filter.Type)
	}

	transactions, err := s.loadCapped(q)
	if err != nil {
		return nil, err
	}

	return filter.Apply(transactions), nil
}

// DeleteTransaction removes a single transaction owned by the user.
// The delete is a hard delete; there is no undo.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	if transactionID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction ID is required")
	}

	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return s.wrapStoreError(err)
	}

	if err := s.db.Delete(&transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetSummary computes overall income, expense, and balance totals over
// the user's capped transaction list.
func (s *transactionService) GetSummary(userID string) (stats.Summary, error) {
	transactions, err := s.loadAll(userID)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(transactions), nil
}

// GetMonthlySeries computes per-month income and expense sums for the
// trailing months selected by timeRange, ending at now's month.
func (s *transactionService) GetMonthlySeries(userID string, now time.Time, timeRange stats.TimeRange) ([]stats.MonthBucket, error) {
	transactions, err := s.loadAll(userID)
	if err != nil {
		return nil, err
	}
	return stats.MonthlySeries(transactions, now, timeRange), nil
}

// GetCategoryBreakdown computes per-category sums for the given type
// over the user's capped transaction list.
func (s *transactionService) GetCategoryBreakdown(userID string, txType models.TransactionType) ([]stats.CategoryTotal, error) {
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	transactions, err := s.loadAll(userID)
	if err != nil {
		return nil, err
	}
	return stats.CategoryBreakdown(transactions, txType), nil
}

func (s *transactionService) loadAll(userID string) ([]models.Transaction, error) {
	if userID == "" {
		return []models.Transaction{}, nil
	}
	return s.loadCapped(s.db.Where("user_id = ?", userID))
}

func (s *transactionService) loadCapped(q *gorm.DB) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := q.Order("created_at DESC").Limit(ListLimit).Find(&transactions).Error; err != nil {
		return nil, s.wrapStoreError(err)
	}
	return transactions, nil
}

// wrapStoreError maps a missing backing table to the transient
// store-not-ready error so the client can suggest a retry; everything
// else is an internal error.
func (s *transactionService) wrapStoreError(err error) error {
	if isStoreNotReady(err) {
		return apperrors.Wrap(apperrors.ErrStoreNotReady, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// isStoreNotReady detects "relation does not exist" style failures from
// both Postgres (SQLSTATE 42P01) and SQLite, which surface when reads
// arrive before migrations have been applied.
func isStoreNotReady(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 42P01") ||
		strings.Contains(msg, "no such table")
}

// Package stats implements the transaction aggregation core: totals,
// monthly time series, per-category breakdowns, and multi-field
// filtering. Every function is a pure, synchronous transformation over
// an in-memory transaction slice; nothing here performs I/O, mutates its
// input, or caches results between calls. Callers re-run the aggregation
// over the full list whenever transactions or parameters change.
package stats

import "duitku/internal/models"

// Summary holds the overall totals for a transaction sequence.
type Summary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// Summarize computes income and expense totals and their balance.
// The empty slice yields the all-zero summary.
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			s.Income += tx.Amount
		case models.TransactionTypeExpense:
			s.Expense += tx.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

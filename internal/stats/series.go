package stats

import (
	"time"

	"duitku/internal/models"
)

// TimeRange selects how many trailing calendar months a monthly series
// covers, including the current month.
type TimeRange string

const (
	RangeRecent3  TimeRange = "recent-3"
	RangeRecent6  TimeRange = "recent-6"
	RangeRecent12 TimeRange = "recent-12"
)

// Valid reports whether r is one of the supported range selectors.
func (r TimeRange) Valid() bool {
	switch r {
	case RangeRecent3, RangeRecent6, RangeRecent12:
		return true
	}
	return false
}

// Months returns the window size in months. Unknown selectors fall back
// to six months, the dashboard default.
func (r TimeRange) Months() int {
	switch r {
	case RangeRecent3:
		return 3
	case RangeRecent12:
		return 12
	default:
		return 6
	}
}

// MonthBucket holds the income and expense sums for one calendar month.
// Month is the first instant of that month.
type MonthBucket struct {
	Month   time.Time `json:"month"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
}

// MonthlySeries buckets transactions into the trailing calendar months
// selected by r, ending at now's month. The result always has exactly
// r.Months() buckets in chronological order: months with no matching
// transactions appear with zero sums rather than being omitted. A
// transaction belongs to a month when its date falls within
// [month start, month end] inclusive.
func MonthlySeries(txs []models.Transaction, now time.Time, r TimeRange) []MonthBucket {
	months := r.Months()
	series := make([]MonthBucket, 0, months)

	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		bucket := MonthBucket{Month: start}
		for _, tx := range txs {
			if tx.Date.Before(start) || tx.Date.After(end) {
				continue
			}
			switch tx.Type {
			case models.TransactionTypeIncome:
				bucket.Income += tx.Amount
			case models.TransactionTypeExpense:
				bucket.Expense += tx.Amount
			}
		}
		series = append(series, bucket)
	}

	return series
}

package stats

import (
	"strings"
	"time"

	"duitku/internal/models"
)

// All is the sentinel value that disables the type or category condition.
const All = "all"

// Filter describes the multi-field transaction filter. Conditions are
// conjunctive: a transaction must satisfy every set field. Zero values
// (empty strings, zero times, the All sentinel) disable their condition,
// so the zero Filter is the identity.
type Filter struct {
	Search    string
	StartDate time.Time
	EndDate   time.Time
	Type      string
	Category  string
}

// Apply returns the transactions matching every set condition, in their
// original relative order. The input slice is never mutated.
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (f Filter) matches(tx models.Transaction) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Search)) {
		return false
	}
	if !f.StartDate.IsZero() && dateOnly(tx.Date).Before(dateOnly(f.StartDate)) {
		return false
	}
	if !f.EndDate.IsZero() && dateOnly(tx.Date).After(dateOnly(f.EndDate)) {
		return false
	}
	if f.Type != "" && f.Type != All && string(tx.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != All && tx.Category != f.Category {
		return false
	}
	return true
}

// dateOnly truncates a timestamp to its calendar date. Date bounds are
// user-entered calendar dates, so comparisons ignore time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package stats

import (
	"duitku/internal/catalog"
	"duitku/internal/models"
)

// CategoryTotal holds the summed amount for a single catalog category.
type CategoryTotal struct {
	Category catalog.Category `json:"category"`
	Amount   int64            `json:"amount"`
}

// CategoryBreakdown sums amounts per category for transactions of the
// given type. It iterates the fixed catalog rather than the transactions,
// so the result follows catalog order and transactions carrying a
// category outside the catalog are ignored. Categories whose total is
// zero are excluded from the result; this is deliberately asymmetric
// with MonthlySeries, where empty months are always present.
func CategoryBreakdown(txs []models.Transaction, t models.TransactionType) []CategoryTotal {
	var out []CategoryTotal
	for _, cat := range catalog.ForType(t) {
		var sum int64
		for _, tx := range txs {
			if tx.Type == t && tx.Category == cat.ID {
				sum += tx.Amount
			}
		}
		if sum > 0 {
			out = append(out, CategoryTotal{Category: cat, Amount: sum})
		}
	}
	return out
}

package stats

import (
	"testing"
	"time"

	"duitku/internal/models"
)

func sampleTransactions() []models.Transaction {
	txs := []models.Transaction{
		mkTx(models.TransactionTypeIncome, "salary", 1000, "2024-01-01"),
		mkTx(models.TransactionTypeExpense, "food", 50, "2024-01-05"),
		mkTx(models.TransactionTypeExpense, "transport", 25, "2024-02-10"),
		mkTx(models.TransactionTypeIncome, "bonus", 200, "2024-02-20"),
	}
	txs[0].Description = "Monthly salary"
	txs[1].Description = "Lunch at warung"
	txs[2].Description = "Bus ticket"
	txs[3].Description = "Project bonus"
	return txs
}

func ids(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Description
	}
	return out
}

func TestFilterApply(t *testing.T) {
	t.Run("zero_filter_is_identity", func(t *testing.T) {
		txs := sampleTransactions()
		got := Filter{}.Apply(txs)

		if len(got) != len(txs) {
			t.Fatalf("expected %d transactions, got %d", len(txs), len(got))
		}
		for i := range txs {
			if got[i].Description != txs[i].Description {
				t.Errorf("order changed at %d: %q != %q", i, got[i].Description, txs[i].Description)
			}
		}
	})

	t.Run("all_sentinels_are_identity", func(t *testing.T) {
		txs := sampleTransactions()
		got := Filter{Type: All, Category: All}.Apply(txs)
		if len(got) != len(txs) {
			t.Errorf("expected %d transactions, got %d", len(txs), len(got))
		}
	})

	t.Run("search_is_case_insensitive_substring", func(t *testing.T) {
		got := Filter{Search: "SALARY"}.Apply(sampleTransactions())
		if len(got) != 1 || got[0].Description != "Monthly salary" {
			t.Errorf("expected single salary match, got %v", ids(got))
		}
	})

	t.Run("empty_search_matches_everything", func(t *testing.T) {
		got := Filter{Search: ""}.Apply(sampleTransactions())
		if len(got) != 4 {
			t.Errorf("expected 4 matches, got %d", len(got))
		}
	})

	t.Run("date_bounds_are_inclusive", func(t *testing.T) {
		start, _ := time.Parse("2006-01-02", "2024-01-05")
		end, _ := time.Parse("2006-01-02", "2024-02-10")

		got := Filter{StartDate: start, EndDate: end}.Apply(sampleTransactions())
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %v", ids(got))
		}
		if got[0].Description != "Lunch at warung" || got[1].Description != "Bus ticket" {
			t.Errorf("unexpected matches: %v", ids(got))
		}
	})

	t.Run("type_filter", func(t *testing.T) {
		got := Filter{Type: "expense"}.Apply(sampleTransactions())
		if len(got) != 2 {
			t.Fatalf("expected 2 expenses, got %v", ids(got))
		}
		for _, tx := range got {
			if tx.Type != models.TransactionTypeExpense {
				t.Errorf("unexpected type %q", tx.Type)
			}
		}
	})

	t.Run("category_filter_is_independent_of_type_filter", func(t *testing.T) {
		// A category filter with type left at the sentinel still applies.
		got := Filter{Type: All, Category: "food"}.Apply(sampleTransactions())
		if len(got) != 1 || got[0].Category != "food" {
			t.Errorf("expected single food transaction, got %v", ids(got))
		}
	})

	t.Run("conditions_are_conjunctive", func(t *testing.T) {
		txs := sampleTransactions()
		combined := Filter{Search: "bonus", Type: "income"}.Apply(txs)

		bySearch := Filter{Search: "bonus"}.Apply(txs)
		byType := Filter{Type: "income"}.Apply(txs)

		for _, tx := range combined {
			if !contains(bySearch, tx.Description) || !contains(byType, tx.Description) {
				t.Errorf("%q in combined result but missing from an individual filter", tx.Description)
			}
		}
		if len(combined) != 1 || combined[0].Description != "Project bonus" {
			t.Errorf("expected single bonus match, got %v", ids(combined))
		}
	})

	t.Run("no_match_yields_empty_not_nil_panic", func(t *testing.T) {
		got := Filter{Search: "does-not-exist"}.Apply(sampleTransactions())
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", ids(got))
		}
	})

	t.Run("input_is_not_mutated", func(t *testing.T) {
		txs := sampleTransactions()
		before := ids(txs)

		Filter{Type: "expense"}.Apply(txs)

		after := ids(txs)
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("input mutated at %d: %q -> %q", i, before[i], after[i])
			}
		}
	})
}

func contains(txs []models.Transaction, description string) bool {
	for _, tx := range txs {
		if tx.Description == description {
			return true
		}
	}
	return false
}

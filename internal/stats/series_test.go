package stats

import (
	"testing"
	"time"

	"duitku/internal/models"
)

func TestTimeRange(t *testing.T) {
	t.Run("months", func(t *testing.T) {
		cases := []struct {
			in   TimeRange
			want int
		}{
			{RangeRecent3, 3},
			{RangeRecent6, 6},
			{RangeRecent12, 12},
			{TimeRange("bogus"), 6}, // dashboard default
		}
		for _, tc := range cases {
			if got := tc.in.Months(); got != tc.want {
				t.Errorf("%q.Months() = %d, want %d", tc.in, got, tc.want)
			}
		}
	})

	t.Run("valid", func(t *testing.T) {
		if !RangeRecent3.Valid() || !RangeRecent6.Valid() || !RangeRecent12.Valid() {
			t.Error("expected the three range selectors to be valid")
		}
		if TimeRange("recent-9").Valid() {
			t.Error("expected recent-9 to be invalid")
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	// Fixed reference instant: mid-March 2024.
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty_input_yields_zero_buckets_not_omission", func(t *testing.T) {
		series := MonthlySeries(nil, now, RangeRecent3)

		if len(series) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(series))
		}
		wantMonths := []time.Month{time.January, time.February, time.March}
		for i, b := range series {
			if b.Month.Month() != wantMonths[i] || b.Month.Year() != 2024 {
				t.Errorf("bucket %d: expected %v 2024, got %v", i, wantMonths[i], b.Month)
			}
			if b.Income != 0 || b.Expense != 0 {
				t.Errorf("bucket %d: expected zero sums, got income=%d expense=%d", i, b.Income, b.Expense)
			}
		}
	})

	t.Run("length_matches_range_regardless_of_data", func(t *testing.T) {
		txs := []models.Transaction{
			mkTx(models.TransactionTypeIncome, "salary", 100, "2024-03-01"),
		}
		for _, tc := range []struct {
			r    TimeRange
			want int
		}{
			{RangeRecent3, 3},
			{RangeRecent6, 6},
			{RangeRecent12, 12},
		} {
			if got := len(MonthlySeries(txs, now, tc.r)); got != tc.want {
				t.Errorf("%q: expected %d buckets, got %d", tc.r, got, tc.want)
			}
		}
	})

	t.Run("sums_by_month_and_type", func(t *testing.T) {
		txs := []models.Transaction{
			mkTx(models.TransactionTypeIncome, "salary", 1000, "2024-01-10"),
			mkTx(models.TransactionTypeExpense, "food", 200, "2024-01-20"),
			mkTx(models.TransactionTypeExpense, "transport", 50, "2024-02-05"),
			mkTx(models.TransactionTypeIncome, "bonus", 300, "2024-03-15"),
		}

		series := MonthlySeries(txs, now, RangeRecent3)
		if len(series) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(series))
		}

		jan, feb, mar := series[0], series[1], series[2]
		if jan.Income != 1000 || jan.Expense != 200 {
			t.Errorf("january: expected income=1000 expense=200, got income=%d expense=%d", jan.Income, jan.Expense)
		}
		if feb.Income != 0 || feb.Expense != 50 {
			t.Errorf("february: expected income=0 expense=50, got income=%d expense=%d", feb.Income, feb.Expense)
		}
		if mar.Income != 300 || mar.Expense != 0 {
			t.Errorf("march: expected income=300 expense=0, got income=%d expense=%d", mar.Income, mar.Expense)
		}
	})

	t.Run("month_bounds_are_inclusive", func(t *testing.T) {
		txs := []models.Transaction{
			mkTx(models.TransactionTypeExpense, "food", 10, "2024-01-01"),
			mkTx(models.TransactionTypeExpense, "food", 20, "2024-01-31"),
		}

		series := MonthlySeries(txs, now, RangeRecent3)
		if series[0].Expense != 30 {
			t.Errorf("expected both boundary transactions in january, got expense=%d", series[0].Expense)
		}
	})

	t.Run("transactions_outside_window_are_excluded", func(t *testing.T) {
		txs := []models.Transaction{
			mkTx(models.TransactionTypeIncome, "salary", 999, "2023-12-31"),
			mkTx(models.TransactionTypeIncome, "salary", 999, "2024-04-01"),
		}

		for _, b := range MonthlySeries(txs, now, RangeRecent3) {
			if b.Income != 0 {
				t.Errorf("bucket %v: expected no income, got %d", b.Month, b.Income)
			}
		}
	})

	t.Run("window_crosses_year_boundary", func(t *testing.T) {
		txs := []models.Transaction{
			mkTx(models.TransactionTypeIncome, "salary", 500, "2023-11-15"),
		}

		series := MonthlySeries(txs, now, RangeRecent6)
		if series[0].Month.Year() != 2023 || series[0].Month.Month() != time.October {
			t.Fatalf("expected series to start at october 2023, got %v", series[0].Month)
		}
		if series[1].Income != 500 {
			t.Errorf("expected november 2023 income 500, got %d", series[1].Income)
		}
	})
}

package services

import (
	"testing"
	"time"

	"duitku/internal/models"
	"duitku/internal/stats"
	"duitku/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("creates_valid_transaction", func(t *testing.T) {
		date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		tx, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 2500, "food", "Lunch", date)
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Error("expected store-assigned ID")
		}
		if tx.CreatedAt.IsZero() {
			t.Error("expected store-assigned creation timestamp")
		}
		if !tx.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, tx.Date)
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		before := time.Now()
		tx, err := svc.CreateTransaction(user.ID, models.TransactionTypeIncome, 100, "salary", "", time.Time{})
		testutil.AssertNoError(t, err)

		if tx.Date.Before(before) || tx.Date.After(time.Now()) {
			t.Errorf("expected defaulted date near now, got %v", tx.Date)
		}
	})

	t.Run("rejects_empty_user_id", func(t *testing.T) {
		_, err := svc.CreateTransaction("", models.TransactionTypeExpense, 100, "food", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, models.TransactionType("transfer"), 100, "food", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, -1, "food", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_category_outside_type_catalog", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 100, "salary", "", time.Now())
		testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY")
	})

	t.Run("accepts_zero_amount", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 0, "other", "", time.Now())
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewTransactionService(db)

	t.Run("empty_user_id_yields_empty_list", func(t *testing.T) {
		txs, err := svc.GetUserTransactions("", stats.Filter{})
		testutil.AssertNoError(t, err)
		if len(txs) != 0 {
			t.Errorf("expected empty list, got %d", len(txs))
		}
	})

	t.Run("newest_created_first", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		first := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food")
		time.Sleep(2 * time.Millisecond)
		second := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 20, "food")

		txs, err := svc.GetUserTransactions(user.ID, stats.Filter{})
		testutil.AssertNoError(t, err)

		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txs))
		}
		if txs[0].ID != second.ID || txs[1].ID != first.ID {
			t.Errorf("expected newest first, got [%s, %s]", txs[0].ID, txs[1].ID)
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, owner.ID, models.TransactionTypeExpense, 10, "food")
		testutil.CreateTestTransaction(t, db, other.ID, models.TransactionTypeExpense, 99, "food")

		txs, err := svc.GetUserTransactions(owner.ID, stats.Filter{})
		testutil.AssertNoError(t, err)
		if len(txs) != 1 || txs[0].UserID != owner.ID {
			t.Errorf("expected only the owner's transaction, got %d", len(txs))
		}
	})

	t.Run("type_condition_filters_results", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food")
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 500, "salary")

		txs, err := svc.GetUserTransactions(user.ID, stats.Filter{Type: "income"})
		testutil.AssertNoError(t, err)
		if len(txs) != 1 || txs[0].Type != models.TransactionTypeIncome {
			t.Errorf("expected single income transaction, got %d", len(txs))
		}
	})

	t.Run("list_is_capped", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		for i := 0; i < ListLimit+5; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, int64(i), "other")
		}

		txs, err := svc.GetUserTransactions(user.ID, stats.Filter{})
		testutil.AssertNoError(t, err)
		if len(txs) != ListLimit {
			t.Errorf("expected %d transactions, got %d", ListLimit, len(txs))
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("deletes_owned_transaction", func(t *testing.T) {
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food")

		testutil.AssertNoError(t, svc.DeleteTransaction(user.ID, tx.ID))

		var count int64
		db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
		if count != 0 {
			t.Error("expected transaction row to be gone")
		}
	})

	t.Run("rejects_empty_id", func(t *testing.T) {
		testutil.AssertAppError(t, svc.DeleteTransaction(user.ID, ""), "INVALID_INPUT")
	})

	t.Run("missing_transaction", func(t *testing.T) {
		testutil.AssertAppError(t, svc.DeleteTransaction(user.ID, "nonexistent"), "TRANSACTION_NOT_FOUND")
	})

	t.Run("cannot_delete_another_users_transaction", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, other.ID, models.TransactionTypeExpense, 10, "food")

		testutil.AssertAppError(t, svc.DeleteTransaction(user.ID, tx.ID), "TRANSACTION_NOT_FOUND")

		var count int64
		db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
		if count != 1 {
			t.Error("expected the other user's transaction to survive")
		}
	})
}

func TestAggregationReads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	now := time.Now()
	// Mid-day on the 15th of the previous month, safe from end-of-month
	// normalization in AddDate.
	lastMonth := time.Date(now.Year(), now.Month(), 15, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)

	testutil.CreateTestTransactionOnDate(t, db, user.ID, models.TransactionTypeIncome, 1000, "salary", now)
	testutil.CreateTestTransactionOnDate(t, db, user.ID, models.TransactionTypeExpense, 50, "food", now)
	testutil.CreateTestTransactionOnDate(t, db, user.ID, models.TransactionTypeExpense, 25, "food", lastMonth)

	t.Run("summary", func(t *testing.T) {
		s, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)
		if s.Income != 1000 || s.Expense != 75 || s.Balance != 925 {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("summary_for_empty_user_id_is_zero", func(t *testing.T) {
		s, err := svc.GetSummary("")
		testutil.AssertNoError(t, err)
		if s.Income != 0 || s.Expense != 0 || s.Balance != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
	})

	t.Run("monthly_series", func(t *testing.T) {
		series, err := svc.GetMonthlySeries(user.ID, now, stats.RangeRecent3)
		testutil.AssertNoError(t, err)
		if len(series) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(series))
		}
		last := series[2]
		if last.Income != 1000 || last.Expense != 50 {
			t.Errorf("current month: expected income=1000 expense=50, got %+v", last)
		}
		if series[1].Expense != 25 {
			t.Errorf("previous month: expected expense=25, got %+v", series[1])
		}
	})

	t.Run("category_breakdown", func(t *testing.T) {
		breakdown, err := svc.GetCategoryBreakdown(user.ID, models.TransactionTypeExpense)
		testutil.AssertNoError(t, err)
		if len(breakdown) != 1 {
			t.Fatalf("expected single category, got %d", len(breakdown))
		}
		if breakdown[0].Category.ID != "food" || breakdown[0].Amount != 75 {
			t.Errorf("expected {food, 75}, got {%s, %d}", breakdown[0].Category.ID, breakdown[0].Amount)
		}
	})

	t.Run("breakdown_rejects_unknown_type", func(t *testing.T) {
		_, err := svc.GetCategoryBreakdown(user.ID, models.TransactionType("transfer"))
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

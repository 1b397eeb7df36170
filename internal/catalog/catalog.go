// Package catalog defines the fixed category catalogs for income and
// expense transactions. The catalogs are static and not user-extensible:
// every transaction's category must be one of these identifiers.
package catalog

import "duitku/internal/models"

// Category is a single catalog entry. ID is the stored identifier,
// Label and Icon are presentation attributes for clients.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ExpenseCategories lists every expense category, in display order.
var ExpenseCategories = []Category{
	{ID: "groceries", Label: "Belanja", Icon: "🛒"},
	{ID: "transport", Label: "Transportasi", Icon: "🚗"},
	{ID: "utilities", Label: "Tagihan & Utilitas", Icon: "📱"},
	{ID: "entertainment", Label: "Hiburan", Icon: "🎮"},
	{ID: "health", Label: "Kesehatan", Icon: "🏥"},
	{ID: "education", Label: "Pendidikan", Icon: "📚"},
	{ID: "shopping", Label: "Belanja Online", Icon: "🛍️"},
	{ID: "food", Label: "Makanan & Minuman", Icon: "🍔"},
	{ID: "other", Label: "Lainnya", Icon: "📦"},
}

// IncomeCategories lists every income category, in display order.
var IncomeCategories = []Category{
	{ID: "salary", Label: "Gaji", Icon: "💰"},
	{ID: "business", Label: "Bisnis", Icon: "💼"},
	{ID: "investment", Label: "Investasi", Icon: "📈"},
	{ID: "freelance", Label: "Freelance", Icon: "💻"},
	{ID: "rental", Label: "Sewa", Icon: "🏠"},
	{ID: "dividend", Label: "Dividen", Icon: "💵"},
	{ID: "interest", Label: "Bunga Bank", Icon: "🏦"},
	{ID: "commission", Label: "Komisi", Icon: "💸"},
	{ID: "royalty", Label: "Royalti", Icon: "👑"},
	{ID: "pension", Label: "Pensiun", Icon: "👴"},
	{ID: "gift", Label: "Hadiah", Icon: "🎁"},
	{ID: "bonus", Label: "Bonus", Icon: "🎯"},
	{ID: "refund", Label: "Pengembalian Dana", Icon: "↩️"},
	{ID: "side_hustle", Label: "Usaha Sampingan", Icon: "🌟"},
	{ID: "other", Label: "Lainnya", Icon: "📦"},
}

// Static ID indexes for O(1) lookup.
var (
	expenseByID = indexByID(ExpenseCategories)
	incomeByID  = indexByID(IncomeCategories)
)

func indexByID(cats []Category) map[string]Category {
	m := make(map[string]Category, len(cats))
	for _, c := range cats {
		m[c.ID] = c
	}
	return m
}

// ForType returns the catalog for the given transaction type, in display
// order. It returns nil for unknown types.
func ForType(t models.TransactionType) []Category {
	switch t {
	case models.TransactionTypeExpense:
		return ExpenseCategories
	case models.TransactionTypeIncome:
		return IncomeCategories
	default:
		return nil
	}
}

// Lookup returns the catalog entry for the given type and category ID.
func Lookup(t models.TransactionType, id string) (Category, bool) {
	switch t {
	case models.TransactionTypeExpense:
		c, ok := expenseByID[id]
		return c, ok
	case models.TransactionTypeIncome:
		c, ok := incomeByID[id]
		return c, ok
	default:
		return Category{}, false
	}
}

// Valid reports whether id names a catalog entry for the given type.
func Valid(t models.TransactionType, id string) bool {
	_, ok := Lookup(t, id)
	return ok
}

package budget

import (
	"testing"

	"github.com/etnz/budget/date"
)

// tx is a helper for tests to build a transaction from constants.
func tx(amount float64, typ TransactionType, method PaymentMethod, on string) Transaction {
	return Transaction{
		ID:            NewID(),
		UserID:        "u1",
		Amount:        M(amount),
		Type:          typ,
		CategoryID:    "c3",
		Date:          date.MustParse(on),
		PaymentMethod: method,
	}
}

// expense is a helper for tests to build a categorized expense.
func expense(amount float64, category string) Transaction {
	t := tx(amount, Expense, Online, "2024-01-10")
	t.CategoryName = category
	return t
}

// allocation is a helper for tests to build an allocation with one item per amount.
func allocation(month string, amounts ...float64) MonthlyAllocation {
	a := MonthlyAllocation{UserID: "u1", Month: date.MustParseMonth(month), Items: []AllocationItem{}}
	for _, v := range amounts {
		a.Items = append(a.Items, AllocationItem{ID: NewID(), Label: "item", Amount: M(v)})
	}
	return a
}

func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

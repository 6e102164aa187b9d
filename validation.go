package budget

import (
	"strings"
	"time"

	"github.com/etnz/budget/date"
)

// NewTransaction builds a transaction for userID, stamping id and creation
// time. ok is false, and the transaction must be dropped, when the amount is
// not strictly positive or no category is given.
func NewTransaction(userID string, amount Money, typ TransactionType, categoryID string, on date.Date, note string, method PaymentMethod) (tx Transaction, ok bool) {
	if !amount.IsPositive() || categoryID == "" {
		return Transaction{}, false
	}
	if on.IsZero() {
		on = date.Today()
	}
	if method == "" {
		method = Online
	}
	return Transaction{
		ID:            NewID(),
		UserID:        userID,
		Amount:        amount,
		Type:          typ,
		CategoryID:    categoryID,
		Date:          on,
		Note:          note,
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
	}, true
}

// NewInvestment builds an investment for userID. ok is false when the name is
// empty or the amount is not positive. The date defaults to today.
func NewInvestment(userID, name string, typ InvestmentType, amount Money, on date.Date) (inv Investment, ok bool) {
	if strings.TrimSpace(name) == "" || !amount.IsPositive() {
		return Investment{}, false
	}
	if on.IsZero() {
		on = date.Today()
	}
	if typ == "" {
		typ = MutualFund
	}
	return Investment{
		ID:     NewID(),
		UserID: userID,
		Name:   name,
		Type:   typ,
		Amount: amount,
		Date:   on,
	}, true
}

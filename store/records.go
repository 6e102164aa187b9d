package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
)

// Records gives typed access to the collections of a Store. Every mutation
// loads the whole collection, modifies it and saves it back.
type Records struct {
	s Store
}

// NewRecords returns the repositories over s.
func NewRecords(s Store) *Records { return &Records{s: s} }

// Users returns every known user.
func (r *Records) Users(ctx context.Context) ([]budget.User, error) {
	var users []budget.User
	if err := r.s.Load(ctx, UsersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the user collection.
func (r *Records) SaveUsers(ctx context.Context, users []budget.User) error {
	return r.s.Save(ctx, UsersCollection, users)
}

// Categories returns the default categories followed by the user's own.
func (r *Records) Categories(ctx context.Context, userID string) ([]budget.Category, error) {
	var all []budget.Category
	if err := r.s.Load(ctx, CategoriesCollection, &all); err != nil {
		return nil, err
	}
	cats := slices.Clone(budget.DefaultCategories)
	for _, c := range all {
		if c.UserID == userID {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

// Transactions returns the user's full history, newest first.
func (r *Records) Transactions(ctx context.Context, userID string) ([]budget.Transaction, error) {
	var all []budget.Transaction
	if err := r.s.Load(ctx, TransactionsCollection, &all); err != nil {
		return nil, err
	}
	txs := slices.DeleteFunc(all, func(t budget.Transaction) bool { return t.UserID != userID })
	budget.SortByDateDesc(txs)
	return txs, nil
}

// AddTransaction appends tx to the transaction collection.
func (r *Records) AddTransaction(ctx context.Context, tx budget.Transaction) error {
	var all []budget.Transaction
	if err := r.s.Load(ctx, TransactionsCollection, &all); err != nil {
		return err
	}
	// the name is resolved on read, never stored
	tx.CategoryName = ""
	all = append(all, tx)
	return r.s.Save(ctx, TransactionsCollection, all)
}

// DeleteTransaction removes the user's transaction id and reports whether it existed.
func (r *Records) DeleteTransaction(ctx context.Context, userID, id string) (bool, error) {
	var all []budget.Transaction
	if err := r.s.Load(ctx, TransactionsCollection, &all); err != nil {
		return false, err
	}
	n := len(all)
	all = slices.DeleteFunc(all, func(t budget.Transaction) bool { return t.UserID == userID && t.ID == id })
	if len(all) == n {
		return false, nil
	}
	if all == nil {
		all = []budget.Transaction{}
	}
	return true, r.s.Save(ctx, TransactionsCollection, all)
}

// Cash returns the user's stored cash baseline, zero when never set.
func (r *Records) Cash(ctx context.Context, userID string) (budget.Money, error) {
	settings := make(map[string]budget.Money)
	if err := r.s.Load(ctx, CashCollection, &settings); err != nil {
		return budget.Zero, err
	}
	return settings[userID], nil
}

// SetCash stores the user's cash baseline.
func (r *Records) SetCash(ctx context.Context, userID string, baseline budget.Money) error {
	settings := make(map[string]budget.Money)
	if err := r.s.Load(ctx, CashCollection, &settings); err != nil {
		return err
	}
	settings[userID] = baseline
	return r.s.Save(ctx, CashCollection, settings)
}

// Investments returns the user's investments in insertion order.
func (r *Records) Investments(ctx context.Context, userID string) ([]budget.Investment, error) {
	var all []budget.Investment
	if err := r.s.Load(ctx, InvestmentsCollection, &all); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(i budget.Investment) bool { return i.UserID != userID }), nil
}

// AddInvestment appends inv to the investment collection.
func (r *Records) AddInvestment(ctx context.Context, inv budget.Investment) error {
	var all []budget.Investment
	if err := r.s.Load(ctx, InvestmentsCollection, &all); err != nil {
		return err
	}
	return r.s.Save(ctx, InvestmentsCollection, append(all, inv))
}

// DeleteInvestment removes the user's investment id and reports whether it existed.
func (r *Records) DeleteInvestment(ctx context.Context, userID, id string) (bool, error) {
	var all []budget.Investment
	if err := r.s.Load(ctx, InvestmentsCollection, &all); err != nil {
		return false, err
	}
	n := len(all)
	all = slices.DeleteFunc(all, func(i budget.Investment) bool { return i.UserID == userID && i.ID == id })
	if len(all) == n {
		return false, nil
	}
	if all == nil {
		all = []budget.Investment{}
	}
	return true, r.s.Save(ctx, InvestmentsCollection, all)
}

// Allocations returns every allocation record of the user.
func (r *Records) Allocations(ctx context.Context, userID string) ([]budget.MonthlyAllocation, error) {
	var all []budget.MonthlyAllocation
	if err := r.s.Load(ctx, AllocationsCollection, &all); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(a budget.MonthlyAllocation) bool { return a.UserID != userID }), nil
}

// Allocation returns the user's record for month and whether it exists.
func (r *Records) Allocation(ctx context.Context, userID string, month date.Month) (budget.MonthlyAllocation, bool, error) {
	all, err := r.Allocations(ctx, userID)
	if err != nil {
		return budget.MonthlyAllocation{}, false, err
	}
	s := budget.Snapshot{UserID: userID, Allocations: all}
	a, found := s.Allocation(month)
	return a, found, nil
}

// SaveAllocation replaces the record of the same user and month, or appends it.
func (r *Records) SaveAllocation(ctx context.Context, a budget.MonthlyAllocation) error {
	if a.UserID == "" || a.Month.IsZero() {
		return fmt.Errorf("allocation record needs a user and a month")
	}
	if a.Items == nil {
		a.Items = []budget.AllocationItem{}
	}
	var all []budget.MonthlyAllocation
	if err := r.s.Load(ctx, AllocationsCollection, &all); err != nil {
		return err
	}
	i := slices.IndexFunc(all, func(x budget.MonthlyAllocation) bool { return x.UserID == a.UserID && x.Month == a.Month })
	if i >= 0 {
		all[i] = a
	} else {
		all = append(all, a)
	}
	return r.s.Save(ctx, AllocationsCollection, all)
}

// Snapshot loads everything Derive needs for the user.
func (r *Records) Snapshot(ctx context.Context, userID string) (budget.Snapshot, error) {
	s := budget.Snapshot{UserID: userID}
	var err error
	if s.Categories, err = r.Categories(ctx, userID); err != nil {
		return s, fmt.Errorf("could not load categories: %w", err)
	}
	if s.Transactions, err = r.Transactions(ctx, userID); err != nil {
		return s, fmt.Errorf("could not load transactions: %w", err)
	}
	if s.Baseline, err = r.Cash(ctx, userID); err != nil {
		return s, fmt.Errorf("could not load cash settings: %w", err)
	}
	if s.Investments, err = r.Investments(ctx, userID); err != nil {
		return s, fmt.Errorf("could not load investments: %w", err)
	}
	if s.Allocations, err = r.Allocations(ctx, userID); err != nil {
		return s, fmt.Errorf("could not load allocations: %w", err)
	}
	return s, nil
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/budget"
	"github.com/sirupsen/logrus"
)

// Copy copies every collection of from into to, as is. Collections missing
// from from are left alone in to. It returns the number of copied collections.
func Copy(ctx context.Context, from, to Store) (int, error) {
	n := 0
	for _, c := range Collections {
		var raw json.RawMessage
		if err := from.Load(ctx, c, &raw); err != nil {
			return n, fmt.Errorf("could not read %s: %w", c, err)
		}
		if raw == nil {
			continue
		}
		if err := to.Save(ctx, c, raw); err != nil {
			return n, fmt.Errorf("could not write %s: %w", c, err)
		}
		logrus.WithFields(logrus.Fields{"collection": c, "bytes": len(raw)}).Info("copied")
		n++
	}
	return n, nil
}

// Report is the outcome of Check.
type Report struct {
	Counts   map[string]int // records per collection
	Problems []string
}

// Check decodes every collection and reports records that the application
// would not be able to use: transactions and allocations of unknown users,
// and duplicate allocation records for the same user and month.
//
// Decoding errors are returned, joined, after every collection was tried.
func Check(ctx context.Context, s Store) (Report, error) {
	r := Report{Counts: make(map[string]int)}

	var (
		users       []budget.User
		txs         []budget.Transaction
		categories  []budget.Category
		cash        map[string]budget.Money
		investments []budget.Investment
		allocations []budget.MonthlyAllocation
	)
	var errs []error
	for c, v := range map[string]any{
		UsersCollection:        &users,
		TransactionsCollection: &txs,
		CategoriesCollection:   &categories,
		CashCollection:         &cash,
		InvestmentsCollection:  &investments,
		AllocationsCollection:  &allocations,
	} {
		if err := s.Load(ctx, c, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}
	r.Counts[UsersCollection] = len(users)
	r.Counts[TransactionsCollection] = len(txs)
	r.Counts[CategoriesCollection] = len(categories)
	r.Counts[CashCollection] = len(cash)
	r.Counts[InvestmentsCollection] = len(investments)
	r.Counts[AllocationsCollection] = len(allocations)

	known := make(map[string]bool)
	for _, u := range users {
		known[u.ID] = true
	}
	for _, t := range txs {
		if !known[t.UserID] {
			r.Problems = append(r.Problems, fmt.Sprintf("transaction %s belongs to unknown user %q", t.ID, t.UserID))
		}
	}
	type key struct {
		user, month string
	}
	seen := make(map[key]bool)
	for _, a := range allocations {
		if !known[a.UserID] {
			r.Problems = append(r.Problems, fmt.Sprintf("special expenses of %s belong to unknown user %q", a.Month, a.UserID))
		}
		k := key{a.UserID, a.Month.String()}
		if seen[k] {
			r.Problems = append(r.Problems, fmt.Sprintf("duplicate special expenses of %s for user %q", a.Month, a.UserID))
		}
		seen[k] = true
	}
	return r, errors.Join(errs...)
}

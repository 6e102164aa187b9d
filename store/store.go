// Package store persists the records of the budget application.
//
// A Store holds named collections, each one a single JSON document that is
// read and replaced as a whole. Records gives typed access to the
// collections used by the application.
//
// There is no locking across processes: the last writer wins.
package store

import "context"

// Collection names.
const (
	UsersCollection        = "budgetflow_users"
	TransactionsCollection = "budgetflow_transactions"
	CategoriesCollection   = "budgetflow_categories"
	CashCollection         = "budgetflow_cash_settings"
	InvestmentsCollection  = "budgetflow_investments"
	AllocationsCollection  = "budgetflow_allocations_v2"
)

// Collections lists every collection used by the application.
var Collections = []string{
	UsersCollection,
	TransactionsCollection,
	CategoriesCollection,
	CashCollection,
	InvestmentsCollection,
	AllocationsCollection,
}

// Store persists whole collections.
type Store interface {
	// Load decodes the collection into v. A collection that was never saved
	// leaves v untouched and is not an error.
	Load(ctx context.Context, collection string, v any) error
	// Save replaces the collection with the JSON encoding of v.
	Save(ctx context.Context, collection string, v any) error
}

// Package budget is the derivation engine of a personal finance tracker.
//
// Users record income and expense transactions, keep a cash baseline,
// plan monthly special allocations and list investments. This package holds
// the data model and the pure functions that turn those raw records into
// the figures shown to the user:
//   - Cash on hand: the baseline plus every cash-channel transaction.
//   - Monthly stats: income, expense and balance net of the month's special allocations.
//   - Lifetime liquidity: baseline plus all transactions minus all special
//     allocations, investments excluded.
//   - Category breakdown: expense totals per category, largest first, with a
//     palette colour derived from the rank.
//   - Exports: CSV and XLSX projections of a transaction list.
//
// Nothing here is incremental. A Snapshot of the raw records goes in, a View
// comes out, and every mutation is followed by a fresh Derive.
//
// Storage, authentication and AI insights live in the store, auth and agent
// packages; the dashboard package ties them together for the `bflow` command.
package budget

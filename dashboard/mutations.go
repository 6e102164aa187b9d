package dashboard

import (
	"context"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/sirupsen/logrus"
)

// AddTransaction records a transaction for the user. ok is false, and nothing
// is written, when the amount is not strictly positive or the category is
// missing.
func (d *Dashboard) AddTransaction(ctx context.Context, amount budget.Money, typ budget.TransactionType, categoryID string, on date.Date, note string, method budget.PaymentMethod) (tx budget.Transaction, ok bool, err error) {
	tx, ok = budget.NewTransaction(d.userID, amount, typ, categoryID, on, note, method)
	if !ok {
		return tx, false, nil
	}
	entry := d.log("add_transaction").WithFields(logrus.Fields{
		"id":      tx.ID,
		"type":    tx.Type,
		"payment": tx.PaymentMethod,
		"amount":  tx.Amount.String(),
		"date":    tx.Date.String(),
	})
	if err := d.records.AddTransaction(ctx, tx); err != nil {
		return tx, false, d.failed(entry, fmt.Errorf("could not add transaction: %w", err))
	}
	return tx, true, d.mutated(ctx, entry)
}

// DeleteTransaction removes one of the user's transactions and reports
// whether it existed.
func (d *Dashboard) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	entry := d.log("delete_transaction").WithField("id", id)
	found, err := d.records.DeleteTransaction(ctx, d.userID, id)
	if err != nil {
		return false, d.failed(entry, fmt.Errorf("could not delete transaction: %w", err))
	}
	if !found {
		return false, nil
	}
	return true, d.mutated(ctx, entry)
}

// SetCurrentCash makes the cash on hand read exactly the figure typed by the
// user, by storing the matching baseline. Non-numeric and negative input is
// rejected with budget.ErrInvalidAmount or budget.ErrNegativeAmount and
// nothing is written.
func (d *Dashboard) SetCurrentCash(ctx context.Context, input string) (budget.Money, error) {
	cash, err := budget.ParseCash(input)
	if err != nil {
		return budget.Zero, err
	}
	txs, err := d.records.Transactions(ctx, d.userID)
	if err != nil {
		return budget.Zero, fmt.Errorf("could not load transactions: %w", err)
	}
	baseline, err := budget.BackSolveBaseline(cash, txs)
	if err != nil {
		return budget.Zero, err
	}
	entry := d.log("set_cash").WithFields(logrus.Fields{
		"cash":     cash.String(),
		"baseline": baseline.String(),
	})
	if err := d.records.SetCash(ctx, d.userID, baseline); err != nil {
		return budget.Zero, d.failed(entry, fmt.Errorf("could not save cash settings: %w", err))
	}
	return baseline, d.mutated(ctx, entry)
}

// AddAllocationItem adds a special expense to month. ok is false, and
// nothing is written, when the label is empty or the amount is not strictly
// positive.
func (d *Dashboard) AddAllocationItem(ctx context.Context, month date.Month, label string, amount budget.Money) (item budget.AllocationItem, ok bool, err error) {
	a, _, err := d.records.Allocation(ctx, d.userID, month)
	if err != nil {
		return item, false, fmt.Errorf("could not load special expenses: %w", err)
	}
	item, ok = a.Add(label, amount)
	if !ok {
		return item, false, nil
	}
	entry := d.log("add_special").WithFields(logrus.Fields{
		"month":  month.String(),
		"id":     item.ID,
		"amount": amount.String(),
	})
	if err := d.records.SaveAllocation(ctx, a); err != nil {
		return item, false, d.failed(entry, fmt.Errorf("could not save special expenses: %w", err))
	}
	return item, true, d.mutated(ctx, entry)
}

// DeleteAllocationItem removes a special expense from month. The month
// record is kept, with an empty list, when its last item goes.
func (d *Dashboard) DeleteAllocationItem(ctx context.Context, month date.Month, id string) (bool, error) {
	a, found, err := d.records.Allocation(ctx, d.userID, month)
	if err != nil {
		return false, fmt.Errorf("could not load special expenses: %w", err)
	}
	if !found || !a.Delete(id) {
		return false, nil
	}
	entry := d.log("delete_special").WithFields(logrus.Fields{
		"month": month.String(),
		"id":    id,
	})
	if err := d.records.SaveAllocation(ctx, a); err != nil {
		return false, d.failed(entry, fmt.Errorf("could not save special expenses: %w", err))
	}
	return true, d.mutated(ctx, entry)
}

// AddInvestment records an investment. ok is false, and nothing is written,
// when the name is empty or the amount is zero.
func (d *Dashboard) AddInvestment(ctx context.Context, name string, typ budget.InvestmentType, amount budget.Money, on date.Date) (inv budget.Investment, ok bool, err error) {
	inv, ok = budget.NewInvestment(d.userID, name, typ, amount, on)
	if !ok {
		return inv, false, nil
	}
	entry := d.log("add_investment").WithFields(logrus.Fields{
		"id":     inv.ID,
		"type":   inv.Type,
		"amount": inv.Amount.String(),
	})
	if err := d.records.AddInvestment(ctx, inv); err != nil {
		return inv, false, d.failed(entry, fmt.Errorf("could not add investment: %w", err))
	}
	return inv, true, d.mutated(ctx, entry)
}

// DeleteInvestment removes one of the user's investments.
func (d *Dashboard) DeleteInvestment(ctx context.Context, id string) (bool, error) {
	entry := d.log("delete_investment").WithField("id", id)
	found, err := d.records.DeleteInvestment(ctx, d.userID, id)
	if err != nil {
		return false, d.failed(entry, fmt.Errorf("could not delete investment: %w", err))
	}
	if !found {
		return false, nil
	}
	return true, d.mutated(ctx, entry)
}

// Package dashboard is the per-user application service of bflow.
//
// A Dashboard reads the user's records, derives the view of a reporting
// month, and applies mutations. Every mutation is written to the record
// store first, then the whole view is derived again from the stored records:
// nothing is patched in place.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/store"
	"github.com/sirupsen/logrus"
)

// ErrNoUser is returned when a dashboard is opened without a signed in user.
var ErrNoUser = errors.New("no signed in user")

// Dashboard is the state of one user looking at one month.
type Dashboard struct {
	records *store.Records
	userID  string
	month   date.Month
	view    budget.View
}

// Open loads the dashboard of userID for month.
func Open(ctx context.Context, records *store.Records, userID string, month date.Month) (*Dashboard, error) {
	if userID == "" {
		return nil, ErrNoUser
	}
	if month.IsZero() {
		month = date.ThisMonth()
	}
	d := &Dashboard{records: records, userID: userID, month: month}
	if err := d.Refresh(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// UserID is the owner of the dashboard.
func (d *Dashboard) UserID() string { return d.userID }

// Month is the reporting month.
func (d *Dashboard) Month() date.Month { return d.month }

// View returns the view derived by the last refresh.
func (d *Dashboard) View() budget.View { return d.view }

// Refresh derives the view again from the stored records.
func (d *Dashboard) Refresh(ctx context.Context) error {
	v, err := d.At(ctx, d.month)
	if err != nil {
		return err
	}
	d.view = v
	return nil
}

// At derives the view of month without changing the reporting month.
func (d *Dashboard) At(ctx context.Context, month date.Month) (budget.View, error) {
	s, err := d.records.Snapshot(ctx, d.userID)
	if err != nil {
		return budget.View{}, fmt.Errorf("could not load records of %s: %w", d.userID, err)
	}
	return budget.Derive(s, month), nil
}

// SetMonth changes the reporting month and refreshes the view.
func (d *Dashboard) SetMonth(ctx context.Context, month date.Month) error {
	d.month = month
	return d.Refresh(ctx)
}

// Categories returns the categories available to the user.
func (d *Dashboard) Categories(ctx context.Context) ([]budget.Category, error) {
	return d.records.Categories(ctx, d.userID)
}

func (d *Dashboard) log(op string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"user_id": d.userID,
		"op":      op,
	})
}

// mutated logs a successful write and derives the view again.
func (d *Dashboard) mutated(ctx context.Context, entry *logrus.Entry) error {
	entry.Info("record updated")
	return d.Refresh(ctx)
}

// failed logs and wraps a failed write.
func (d *Dashboard) failed(entry *logrus.Entry, err error) error {
	entry.WithField("error", err.Error()).Error("record update failed")
	return err
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard of a month" }
func (*summaryCmd) Usage() string {
	return `bflow summary [-month YYYY-MM]

  Displays the dashboard of the month: balance, cash on hand, liquidity,
  special expenses, spending breakdown, daily trend and transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month. Defaults to the current month.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		month, err := parseMonth(c.month)
		if err != nil {
			return err
		}
		d, err := a.dashboard(ctx, month)
		if err != nil {
			return err
		}
		printMarkdown(renderer.DashboardMarkdown(d.View(), a.cfg.Currency))
		return nil
	})
}

type cashCmd struct {
	set string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "show or set the cash on hand" }
func (*cashCmd) Usage() string {
	return `bflow cash [-set <amount>]

  Shows the cash on hand. With -set, makes it read exactly the given amount.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "The cash actually on hand.")
}

func (c *cashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		d, err := a.dashboard(ctx, date.ThisMonth())
		if err != nil {
			return err
		}
		if c.set != "" {
			_, err := d.SetCurrentCash(ctx, c.set)
			switch {
			case errors.Is(err, budget.ErrNegativeAmount):
				return usagef("cash on hand cannot be negative")
			case errors.Is(err, budget.ErrInvalidAmount):
				return usagef("%q is not an amount", c.set)
			case err != nil:
				return err
			}
		}
		fmt.Fprintf(stdout, "Cash on hand: %s\n", d.View().Cash.Format(a.cfg.Currency))
		return nil
	})
}

type breakdownCmd struct {
	month string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "show the spending per category" }
func (*breakdownCmd) Usage() string {
	return `bflow breakdown [-month YYYY-MM]

  Shows the expenses of the month per category, largest first, with the
  colour of each category.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month. Defaults to the current month.")
}

func (c *breakdownCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		month, err := parseMonth(c.month)
		if err != nil {
			return err
		}
		d, err := a.dashboard(ctx, month)
		if err != nil {
			return err
		}
		v := d.View()
		printMarkdown(renderer.BreakdownMarkdown(v, a.cfg.Currency))
		if len(v.Breakdown) > 0 {
			fmt.Fprintln(stdout)
			fmt.Fprint(stdout, renderer.Legend(v.Breakdown, a.cfg.Currency))
		}
		return nil
	})
}

type categoriesCmd struct {
	typ string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the transaction categories" }
func (*categoriesCmd) Usage() string {
	return `bflow categories [-type expense|income]
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Only list the categories of this transaction type.")
}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		d, err := a.dashboard(ctx, date.ThisMonth())
		if err != nil {
			return err
		}
		categories, err := d.Categories(ctx)
		if err != nil {
			return err
		}
		if c.typ != "" {
			typ, err := budget.ParseTransactionType(c.typ)
			if err != nil {
				return usagef("%v", err)
			}
			categories = budget.CategoriesOf(categories, typ)
		}
		printMarkdown(renderer.CategoriesMarkdown(categories))
		return nil
	})
}

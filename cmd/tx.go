package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	typ    string
	method string
	date   string
	note   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `bflow add [-type expense|income] [-pay online|cash] [-date YYYY-MM-DD] [-note <text>] <category> <amount>

  Records a transaction. The category is given by id or by name. The amount
  must be strictly positive.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(budget.Expense), "Transaction type: expense or income.")
	f.StringVar(&c.method, "pay", string(budget.Online), "Payment channel: online or cash.")
	f.StringVar(&c.date, "date", "", "Date of the transaction. Defaults to today.")
	f.StringVar(&c.note, "note", "", "Free text note.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		if f.NArg() != 2 {
			return usagef("add takes a category and an amount")
		}
		typ, err := budget.ParseTransactionType(c.typ)
		if err != nil {
			return usagef("%v", err)
		}
		method, err := budget.ParsePaymentMethod(c.method)
		if err != nil {
			return usagef("%v", err)
		}
		on, err := parseDate(c.date)
		if err != nil {
			return err
		}
		amount, err := budget.ParseMoney(f.Arg(1))
		if err != nil {
			return usagef("%v", err)
		}

		d, err := a.dashboard(ctx, date.MonthOf(on))
		if err != nil {
			return err
		}
		categories, err := d.Categories(ctx)
		if err != nil {
			return err
		}
		category, ok := findCategory(budget.CategoriesOf(categories, typ), f.Arg(0))
		if !ok {
			return usagef("no %s category %q, see 'bflow categories'", typ, f.Arg(0))
		}

		tx, ok, err := d.AddTransaction(ctx, amount, typ, category.ID, on, c.note, method)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stderr, "Ignored: the amount must be strictly positive.")
			return nil
		}
		fmt.Fprintf(stdout, "Added %s %s on %s (%s).\n\n", tx.Type, tx.Amount.Format(a.cfg.Currency), tx.Date, tx.ID)
		printMarkdown(renderer.SummaryMarkdown(d.View(), a.cfg.Currency))
		return nil
	})
}

// findCategory looks a category up by id, then by case insensitive name.
func findCategory(categories []budget.Category, key string) (budget.Category, bool) {
	key = strings.TrimSpace(key)
	for _, c := range categories {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return budget.Category{}, false
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `bflow rm <id>...

  Deletes transactions by id. Transactions cannot be edited: delete and add
  them again instead.
`
}
func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		if f.NArg() == 0 {
			return usagef("rm takes at least one transaction id")
		}
		d, err := a.dashboard(ctx, date.ThisMonth())
		if err != nil {
			return err
		}
		for _, id := range f.Args() {
			found, err := d.DeleteTransaction(ctx, id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(stderr, "No transaction %q.\n", id)
				continue
			}
			fmt.Fprintf(stdout, "Deleted %s.\n", id)
		}
		return nil
	})
}

type txCmd struct {
	month string
	head  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of a month" }
func (*txCmd) Usage() string {
	return `bflow tx [-month YYYY-MM] [-head <n>]

  Lists the transactions of the month, newest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month. Defaults to the current month.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if c.head > 0 && len(v.Transactions) > c.head {
			v.Transactions = v.Transactions[:c.head]
		}
		printMarkdown(renderer.TransactionsMarkdown(v, a.cfg.Currency))
		return nil
	})
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type specialCmd struct {
	month string
}

func (*specialCmd) Name() string     { return "special" }
func (*specialCmd) Synopsis() string { return "list, add or remove the special expenses of a month" }
func (*specialCmd) Usage() string {
	return `bflow special [-month YYYY-MM] [list]
bflow special [-month YYYY-MM] add <label> <amount>
bflow special [-month YYYY-MM] rm <id>

  Manages the one-off amounts set aside for a month.
`
}

func (c *specialCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month of the special expenses. Defaults to the current month.")
}

func (c *specialCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		month, err := parseMonth(c.month)
		if err != nil {
			return err
		}
		verb, args := "list", f.Args()
		if len(args) > 0 {
			verb, args = args[0], args[1:]
		}

		d, err := a.dashboard(ctx, month)
		if err != nil {
			return err
		}
		switch verb {
		case "list":
		case "add":
			if len(args) != 2 {
				return usagef("special add takes a label and an amount")
			}
			amount, err := budget.ParseMoney(args[1])
			if err != nil {
				return usagef("%v", err)
			}
			_, ok, err := d.AddAllocationItem(ctx, month, args[0], amount)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stderr, "Ignored: a label and a strictly positive amount are required.")
			}
		case "rm":
			if len(args) != 1 {
				return usagef("special rm takes an item id")
			}
			found, err := d.DeleteAllocationItem(ctx, month, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(stderr, "No special expense %q in %s.\n", args[0], month)
			}
		default:
			return usagef("unknown action %q, want list, add or rm", verb)
		}
		printMarkdown(renderer.SpecialMarkdown(d.View(), a.cfg.Currency))
		return nil
	})
}

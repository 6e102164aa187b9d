package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "list, add or remove investments" }
func (*investCmd) Usage() string {
	return `bflow invest [list]
bflow invest add [-type <type>] [-date YYYY-MM-DD] <name> <amount>
bflow invest rm <id>

  Manages investments. They are tracked apart and never count in liquidity.
`
}
func (*investCmd) SetFlags(*flag.FlagSet) {}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		verb, args := "list", f.Args()
		if len(args) > 0 {
			verb, args = args[0], args[1:]
		}
		d, err := a.dashboard(ctx, date.ThisMonth())
		if err != nil {
			return err
		}

		switch verb {
		case "list":
		case "add":
			add := flag.NewFlagSet("invest add", flag.ContinueOnError)
			add.SetOutput(stderr)
			typ := add.String("type", string(budget.MutualFund), fmt.Sprintf("Investment type, one of %q.", budget.InvestmentTypes))
			on := add.String("date", "", "Date of the investment. Defaults to today.")
			if err := add.Parse(args); err != nil {
				return usagef("%v", err)
			}
			if add.NArg() != 2 {
				return usagef("invest add takes a name and an amount")
			}
			it, err := budget.ParseInvestmentType(*typ)
			if err != nil {
				return usagef("%v", err)
			}
			day, err := parseDate(*on)
			if err != nil {
				return err
			}
			amount, err := budget.ParseMoney(add.Arg(1))
			if err != nil {
				return usagef("%v", err)
			}
			_, ok, err := d.AddInvestment(ctx, add.Arg(0), it, amount, day)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stderr, "Ignored: a name and a non zero amount are required.")
			}
		case "rm":
			if len(args) != 1 {
				return usagef("invest rm takes an investment id")
			}
			found, err := d.DeleteInvestment(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(stderr, "No investment %q.\n", args[0])
			}
		default:
			return usagef("unknown action %q, want list, add or rm", verb)
		}
		printMarkdown(renderer.InvestmentsMarkdown(d.View(), a.cfg.Currency))
		return nil
	})
}

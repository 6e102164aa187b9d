package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type exportCmd struct {
	month  string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transactions of a month" }
func (*exportCmd) Usage() string {
	return `bflow export [-month YYYY-MM] [-format csv|xlsx] [-o <file>]

  Writes the transactions of the month, newest first, to
  budget_export_<YYYY-MM>.<format>. Use -o - for the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month. Defaults to the current month.")
	f.StringVar(&c.format, "format", "csv", "File format: csv or xlsx.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the export file name in the current directory.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		month, err := parseMonth(c.month)
		if err != nil {
			return err
		}
		var write func(io.Writer, []budget.Transaction) error
		switch c.format {
		case "csv":
			write = func(w io.Writer, txs []budget.Transaction) error {
				_, err := io.WriteString(w, budget.ToCSV(txs)+"\n")
				return err
			}
		case "xlsx":
			write = budget.WriteXLSX
		default:
			return usagef("unknown format %q, want csv or xlsx", c.format)
		}

		d, err := a.dashboard(ctx, month)
		if err != nil {
			return err
		}
		txs := d.View().Transactions

		if c.output == "-" {
			return write(stdout, txs)
		}
		name := c.output
		if name == "" {
			name = budget.ExportFilename(month, c.format)
		}
		out, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := write(out, txs); err != nil {
			out.Close()
			return fmt.Errorf("could not write %s: %w", name, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"file":         name,
			"transactions": len(txs),
		}).Info("exported")
		fmt.Fprintf(stdout, "Exported %d transactions to %s.\n", len(txs), name)
		return nil
	})
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget/agent"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type insightsCmd struct {
	month string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask Gemini for tips on the spending of a month" }
func (*insightsCmd) Usage() string {
	return `bflow insights [-month YYYY-MM]

  Sends the transactions of the month (at most 50) to Gemini and shows its
  suggestions. Requires GEMINI_API_KEY.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month. Defaults to the current month.")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		month, err := parseMonth(c.month)
		if err != nil {
			return err
		}
		d, err := a.dashboard(ctx, month)
		if err != nil {
			return err
		}

		analyst := agent.NewAnalyst(nil)
		if a.cfg.GeminiAPIKey != "" {
			client, err := agent.NewClient(ctx, a.cfg.GeminiAPIKey)
			if err != nil {
				logrus.WithField("error", err.Error()).Warn("could not create the Gemini client")
			} else {
				analyst = agent.NewAnalyst(client.Models)
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "# Insights %s\n\n", month)
		for _, item := range agent.Items(analyst.AnalyzeFinances(ctx, d.View().Transactions)) {
			fmt.Fprintf(&b, "* %s\n", item)
		}
		printMarkdown(b.String())
		return nil
	})
}

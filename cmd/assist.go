package cmd

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/etnz/budget/agent"
	"github.com/etnz/budget/date"
	"github.com/google/subcommands"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string { return "Start an interactive session with the budget advisor." }

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `bflow assist [<question>]

  Start an interactive session with the budget advisor. Requires GEMINI_API_KEY.
`
}

// SetFlags sets the flags for the command.
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		var prompts []string
		if f.NArg() > 0 {
			prompts = append(prompts, strings.Join(f.Args(), " "))
		}

		d, err := a.dashboard(ctx, date.ThisMonth())
		if err != nil {
			return err
		}
		client, err := agent.NewClient(ctx, a.cfg.GeminiAPIKey)
		if err != nil {
			return err
		}

		advisor := agent.NewAdvisor(agent.ViewerFunc(d.At), a.cfg.Currency)
		session := agent.New(stdout, stdin, advisor)
		session.Print = func(w io.Writer, markdown string) { fprintMarkdown(w, markdown) }
		return session.Run(ctx, client, prompts...)
	})
}

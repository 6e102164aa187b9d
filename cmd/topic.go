package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation" }
func (*topicCmd) Usage() string {
	return `bflow topic [-list] [<topic>...|*]

Print the given documentation topics, '*' for all of them. Without a topic,
print the introduction.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the topics with their title")
}

func (c *topicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		for _, name := range docs.Names() {
			fmt.Fprintf(stdout, "%-12s %s\n", name, docs.Title(name))
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{docs.Readme}
	}
	content, err := docs.Read(names...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}

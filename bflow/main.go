// Command bflow tracks a personal budget: income, expenses, cash on hand,
// special expenses and investments.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers the shell and exits when called for completion (COMP_LINE set).
	cmd.Completion().Complete("bflow")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

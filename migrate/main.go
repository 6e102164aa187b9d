// Command migrate moves budget records between storage backends and checks
// their consistency.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/budget/config"
	"github.com/etnz/budget/store"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main bflow tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(&copyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// openStore opens a store location: "file:<dir>" or "redis:<addr>[/<db>]".
// The redis password is read from REDIS_PASS.
func openStore(ctx context.Context, location string) (store.Store, func() error, error) {
	kind, arg, ok := strings.Cut(location, ":")
	if !ok || arg == "" {
		return nil, nil, fmt.Errorf("invalid location %q, want file:<dir> or redis:<addr>[/<db>]", location)
	}
	switch kind {
	case config.FileStore:
		s, err := store.NewFileStore(arg)
		return s, func() error { return nil }, err
	case config.RedisStore:
		addr, db := arg, 0
		if a, d, ok := strings.Cut(arg, "/"); ok {
			n, err := strconv.Atoi(d)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid redis database %q: %w", d, err)
			}
			addr, db = a, n
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		rdb, err := store.DialRedis(ctx, addr, cfg.RedisPass, db)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, ""), rdb.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q in %q", kind, location)
}

// --- copyCmd ---

type copyCmd struct {
	from string
	to   string
}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copies every collection from one store to another" }
func (*copyCmd) Usage() string {
	return `migrate copy -from <location> -to <location>

Copies every collection, as is, from one store to another. A location is
file:<dir> or redis:<addr>[/<db>]. Collections of the destination that are
missing from the source are left alone.
`
}

func (c *copyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source store location.")
	f.StringVar(&c.to, "to", "", "Destination store location.")
}

func (c *copyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to flags are required.")
		return subcommands.ExitUsageError
	}
	if c.from == c.to {
		fmt.Fprintln(os.Stderr, "Error: source and destination must differ.")
		return subcommands.ExitUsageError
	}
	from, closeFrom, err := openStore(ctx, c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeFrom()
	to, closeTo, err := openStore(ctx, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeTo()

	n, err := store.Copy(ctx, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Copied %d collections from %s to %s.\n", n, c.from, c.to)
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	in string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "checks the records of a store" }
func (*checkCmd) Usage() string {
	return `migrate check -in <location>

Decodes every collection of the store, prints the number of records of each
and lists the records the application cannot use.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Store location to check.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	s, closeStore, err := openStore(ctx, c.in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report, err := store.Check(ctx, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	names := make([]string, 0, len(report.Counts))
	for name := range report.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-28s %6d\n", name, report.Counts[name])
	}
	for _, p := range report.Problems {
		logrus.Warn(p)
	}
	if len(report.Problems) > 0 {
		fmt.Printf("%d problems found.\n", len(report.Problems))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

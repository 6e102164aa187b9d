// Package cmd implements the CLI application to track a personal budget.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget/auth"
	"github.com/etnz/budget/config"
	"github.com/etnz/budget/dashboard"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/store"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Commands lists every subcommand with its group.
var Commands = []struct {
	Cmd   subcommands.Command
	Group string
}{
	{&loginCmd{}, "account"},
	{&logoutCmd{}, "account"},
	{&whoamiCmd{}, "account"},
	{&passwdCmd{}, "account"},

	{&addCmd{}, "records"},
	{&rmCmd{}, "records"},
	{&cashCmd{}, "records"},
	{&specialCmd{}, "records"},
	{&investCmd{}, "records"},

	{&summaryCmd{}, "reports"},
	{&txCmd{}, "reports"},
	{&breakdownCmd{}, "reports"},
	{&categoriesCmd{}, "reports"},
	{&exportCmd{}, "reports"},
	{&insightsCmd{}, "reports"},
	{&assistCmd{}, "reports"},

	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Cmd, cmd.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Directory of the local records and session. Overrides BFLOW_DATA_DIR.")
var currency = flag.String("currency", "", "ISO code of the display currency. Overrides BFLOW_CURRENCY.")

var (
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	stdin      io.Reader = os.Stdin
	loadConfig           = config.Load
	// readPassword prompts on stderr and reads a line without echo.
	readPassword = func(prompt string) (string, error) {
		fmt.Fprint(os.Stderr, prompt)
		defer fmt.Fprintln(os.Stderr)
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		return string(b), err
	}
)

// app is everything a command needs: configuration, records and session.
type app struct {
	cfg     *config.Config
	records *store.Records
	session *auth.Session
	closers []func() error
}

// setup reads the configuration, configures logging, opens the record store
// and restores the session.
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	a := &app{cfg: cfg, session: &auth.Session{}}
	s, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	a.records = store.NewRecords(s)

	unsubscribe, err := auth.SessionFile(cfg.SessionPath()).Open(a.session)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("could not restore session: %w", err)
	}
	a.closers = append(a.closers, func() error { unsubscribe(); return nil })
	return a, nil
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	switch a.cfg.Store {
	case config.MemoryStore:
		logrus.Warn("records are kept in memory and lost on exit")
		return store.NewMemoryStore(), nil
	case config.RedisStore:
		rdb, err := store.DialRedis(ctx, a.cfg.RedisAddr, a.cfg.RedisPass, a.cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		return store.NewRedisStore(rdb, ""), nil
	default:
		return store.NewFileStore(a.cfg.DataDir)
	}
}

// provider returns the configured identity provider.
func (a *app) provider() (auth.Provider, error) {
	if a.cfg.Auth == config.LocalAuth {
		return auth.NewLocal(a.records), nil
	}
	if !auth.Configured(a.cfg.FirebaseAPIKey) {
		return nil, auth.ErrNotConfigured
	}
	return auth.NewFirebase(a.cfg.FirebaseAPIKey), nil
}

// identity returns the signed in identity. A session whose provider token
// has expired is ended.
func (a *app) identity() (*auth.Identity, error) {
	id := a.session.Current()
	if id == nil {
		return nil, auth.ErrNotSignedIn
	}
	if id.Expired(time.Now()) {
		logrus.WithFields(logrus.Fields{"user": id.UID, "expires": id.Expires}).Info("session expired")
		a.session.End()
		return nil, fmt.Errorf("session expired: %w", auth.ErrNotSignedIn)
	}
	return id, nil
}

// dashboard opens the dashboard of the signed in user for month.
func (a *app) dashboard(ctx context.Context, month date.Month) (*dashboard.Dashboard, error) {
	id, err := a.identity()
	if err != nil {
		return nil, err
	}
	return dashboard.Open(ctx, a.records, id.UID, month)
}

func (a *app) close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	if err := errors.Join(errs...); err != nil {
		logrus.WithField("error", err.Error()).Warn("closing failed")
	}
}

// run sets the app up, calls f and reports its error. It is the body of
// every command that reads or writes records.
func run(ctx context.Context, f func(context.Context, *app) error) subcommands.ExitStatus {
	a, err := setup(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.close()
	if err := f(ctx, a); err != nil {
		var usage usageError
		switch {
		case errors.As(err, &usage):
			fmt.Fprintln(stderr, "Error:", err)
			return subcommands.ExitUsageError
		case errors.Is(err, auth.ErrNotSignedIn):
			fmt.Fprintln(stderr, "Not signed in. Run 'bflow login' first.")
		default:
			fmt.Fprintln(stderr, "Error:", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// usageError is an error in the command line itself.
type usageError string

func (e usageError) Error() string { return string(e) }

func usagef(format string, args ...any) error { return usageError(fmt.Sprintf(format, args...)) }

// parseMonth parses a -month flag, empty meaning the current month.
func parseMonth(s string) (date.Month, error) {
	if s == "" {
		return date.ThisMonth(), nil
	}
	m, err := date.ParseMonth(s)
	if err != nil {
		return m, usagef("invalid month %q, want YYYY-MM", s)
	}
	return m, nil
}

// parseDate parses a -date flag, empty meaning today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return d, usagef("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// printMarkdown renders md for the terminal, or writes it as is when the
// output is not a terminal.
func printMarkdown(md string) {
	fprintMarkdown(stdout, md)
}

func fprintMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	logrus.WithField("error", err.Error()).Debug("markdown rendering failed")
	fmt.Fprint(w, md)
}

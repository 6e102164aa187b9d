package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget/auth"
	"github.com/google/subcommands"
)

type loginCmd struct {
	email string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in, or register a new account" }
func (*loginCmd) Usage() string {
	return `bflow login -email <email>

  Signs in with the password read from the terminal. An email without an
  account is registered with that password.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the account.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		email := strings.TrimSpace(c.email)
		if email == "" {
			return usagef("-email is required")
		}
		p, err := a.provider()
		if err != nil {
			return errors.New(auth.Message(err))
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return fmt.Errorf("could not read password: %w", err)
		}

		id, err := auth.Login(ctx, p, email, password)
		if err != nil {
			return errors.New(auth.Message(err))
		}
		if _, err := auth.SyncUser(ctx, a.records, id); err != nil {
			return err
		}
		a.session.Start(id)
		fmt.Fprintf(stdout, "Signed in as %s.\n", id.Email)
		return nil
	})
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "end the session" }
func (*logoutCmd) Usage() string {
	return `bflow logout

  Ends the session.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		if a.session.Current() == nil {
			fmt.Fprintln(stdout, "Not signed in.")
			return nil
		}
		a.session.End()
		fmt.Fprintln(stdout, "Signed out.")
		return nil
	})
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed in account" }
func (*whoamiCmd) Usage() string {
	return `bflow whoami
`
}
func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		id, err := a.identity()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s (%s)\n", id.Email, id.UID)
		return nil
	})
}

type passwdCmd struct{}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change the password of the signed in account" }
func (*passwdCmd) Usage() string {
	return `bflow passwd

  Asks for the current password, then twice for the new one.
`
}
func (*passwdCmd) SetFlags(*flag.FlagSet) {}

func (c *passwdCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		id, err := a.identity()
		if err != nil {
			return err
		}
		p, err := a.provider()
		if err != nil {
			return errors.New(auth.Message(err))
		}
		var current, next, again string
		for _, ask := range []struct {
			prompt string
			into   *string
		}{
			{"Current password: ", &current},
			{"New password: ", &next},
			{"New password again: ", &again},
		} {
			if *ask.into, err = readPassword(ask.prompt); err != nil {
				return fmt.Errorf("could not read password: %w", err)
			}
		}
		if next != again {
			return errors.New("the new passwords do not match")
		}
		renewed, err := p.ChangePassword(ctx, *id, current, next)
		if err != nil {
			return errors.New(auth.Message(err))
		}
		a.session.Start(renewed)
		fmt.Fprintln(stdout, "Password changed.")
		return nil
	})
}

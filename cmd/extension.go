package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Environment passed to extensions, so that they read the same records.
const (
	EnvDataDir  = "BFLOW_DATA_DIR"
	EnvCurrency = "BFLOW_CURRENCY"
)

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Cmd.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external bflow-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bflow-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logrus.WithField("error", err.Error()).Debugf("no extension %q", externalCmdName)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	if *dataDir != "" {
		cmd.Env = append(cmd.Env, EnvDataDir+"="+*dataDir)
	}
	if *currency != "" {
		cmd.Env = append(cmd.Env, EnvCurrency+"="+*currency)
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

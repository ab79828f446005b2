// Command gologic evaluates propositional formulas, prints truth tables,
// checks consistency and validates proofs.
//
//	gologic eval "(A ∧ B) → C" -a A=t -a B=t -a C=f
//	gologic table "A → B" "~B" "~A"
//	gologic consistent "A ∨ B" "~A"
//	gologic rule MP B "A → B" A
//	gologic proof proof.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	c := &cli{stdin: os.Stdin, interactive: isatty.IsTerminal(os.Stdin.Fd())}
	os.Exit(c.run(os.Args[1:], os.Stdout, os.Stderr))
}

// A resultError reports a negative answer. It is not a failure of the command.
type resultError struct {
	code int
}

func (e resultError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// run executes the command line args and returns the exit code.
func (c *cli) run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(c.stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if c.log != nil {
		defer c.log.Sync() //nolint:errcheck
	}
	var res resultError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &res):
		return res.code
	default:
		if c.log != nil {
			c.log.Debug("command failed", zap.Strings("args", args), zap.Error(err))
		}
		newPrinter(stderr, c.cfg.Color).error(err)
		return exitError
	}
}

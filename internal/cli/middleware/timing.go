package middleware

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Timing creates a middleware that reports how long a command took. The
// verbose getter is evaluated per run so the --verbose flag is honored even
// though middleware is applied before flags are parsed.
func Timing(verbose func() bool) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err := next(cmd, args)
			if verbose() {
				duration := time.Since(start)
				fmt.Fprintf(cmd.ErrOrStderr(), "\nCompleted in %s\n", duration.Round(time.Millisecond))
			}
			return err
		}
	}
}

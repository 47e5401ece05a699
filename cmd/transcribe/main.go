package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// runMain executes the root command and maps its outcome to an exit status.
func runMain(ctx context.Context, args []string, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, cmd.UsageString())
	case !errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, err)
	}
	return 1
}

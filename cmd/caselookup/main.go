package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/flarebyte/caselookup/cmd/caselookup/root"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.Execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		// Print a short, single-line error to stderr on failures.
		// Do not print usage or stack traces.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(root.ExitCode(err))
	}
}

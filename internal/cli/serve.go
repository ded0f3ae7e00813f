package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"quizren/internal/stubserver"
)

func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:8946", "Listen address")
		fixture := fs.String("fixture", "", "Path to a quiz JSON fixture (defaults to a built-in sample)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving quiz fixtures on http://%s/api/v1/quiz/data?nid=1\n", *addr)
		if err := stubserver.Serve(ctx, stubserver.Config{Addr: *addr, FixturePath: *fixture}); err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/erraggy/swagsplit/cmd/swagsplit/commands"
	"github.com/erraggy/swagsplit/internal/cliutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := commands.NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Package main is the entry point for the heft CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/graft"

	"go.heftrun.dev/heft/cmd/heft/commands"
	"go.heftrun.dev/heft/internal/app"
	_ "go.heftrun.dev/heft/internal/wiring" // register graft nodes
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	a, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	defer func() { _ = a.Close() }()

	cli := commands.New(a)
	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}

// Where: cli/cmd/credctl/main.go
// What: CLI entrypoint.
// Why: Execute credctl commands with configured dependencies.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru/credctl/cli/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	deps, err := buildDependencies(ctx)
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := command.Run(os.Args[1:], deps)
	stop()
	os.Exit(code)
}

// Where: cli/cmd/credctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/poruru/credctl/cli/internal/command"
	"github.com/poruru/credctl/cli/internal/infra/config"
	"github.com/poruru/credctl/cli/internal/infra/interaction"
	"github.com/poruru/credctl/cli/internal/remote"
)

var (
	getwd      = os.Getwd
	newFactory = func() remote.ClientFactory { return remote.AWSClientFactory{} }
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// Remote clients are created lazily so `version` and `config show` never touch AWS.
func buildDependencies(ctx context.Context) (command.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}

	factory := newFactory()
	return command.Dependencies{
		Context:  ctx,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		Prompter: interaction.HuhPrompter{},
		Remote: func(ctx context.Context, cfg config.GlobalConfig) (command.Remote, error) {
			store, err := remote.NewStore(ctx, factory, cfg)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
		IsTerminal:  func() bool { return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout) },
		KeystoreDir: workDir,
	}, nil
}

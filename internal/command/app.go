// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/credctl/cli/internal/infra/config"
	"github.com/poruru/credctl/cli/internal/infra/interaction"
	"github.com/poruru/credctl/cli/internal/remote"
	"github.com/poruru/credctl/cli/internal/version"
)

// Remote is the remote service surface the commands talk to.
type Remote interface {
	remote.AndroidAPI
	remote.BuildAPI
}

// RemoteFactory connects to the remote service described by cfg.
type RemoteFactory func(ctx context.Context, cfg config.GlobalConfig) (Remote, error)

// Dependencies holds all injected dependencies required for CLI command execution.
// Zero values fall back to the real terminal, huh prompts and the AWS store.
type Dependencies struct {
	Context  context.Context
	Out      io.Writer
	ErrOut   io.Writer
	Prompter interaction.Prompter
	Remote   RemoteFactory
	// IsTerminal reports whether prompts can be shown.
	IsTerminal func() bool
	// KeystoreDir receives downloaded keystores.
	KeystoreDir string
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile        string `name:"env-file" help:"Path to .env file"`
	ConfigPath     string `name:"config" help:"Path to config file (default: ~/.credctl/config.yaml)"`
	NonInteractive bool   `name:"non-interactive" help:"Never prompt; fail when input is required"`
	Verbose        bool   `short:"v" help:"Write debug logs to stderr"`
	NoEmoji        bool   `name:"no-emoji" help:"Disable emoji output"`

	Android AndroidCmd `cmd:"" help:"Manage Android credentials of an experience"`
	Build   BuildCmd   `cmd:"" help:"Inspect remote builds"`
	Config  ConfigCmd  `cmd:"" help:"Inspect configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// AndroidCmd opens the credential manager for one experience.
	AndroidCmd struct {
		Experience string `arg:"" optional:"" help:"Experience name (@owner/slug)"`
	}

	BuildCmd struct {
		Status BuildStatusCmd `cmd:"" help:"Show recent builds of an account"`
	}

	BuildStatusCmd struct {
		Account string `short:"a" help:"Account owning the builds (default: config account)"`
		Limit   int    `short:"n" default:"10" help:"Maximum number of builds to show"`
	}

	ConfigCmd struct {
		Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
	}

	ConfigShowCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	deps = withDefaults(deps)

	// Handle no arguments: show usage
	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Manage Android app credentials and inspect remote builds."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, deps, out)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			plainUI(out).Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			plainUI(out).Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
		}
	}

	command := commandPath(ctx.Command())
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	plainUI(out).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"android":      runAndroid,
		"build status": runBuildStatus,
		"config show":  runConfigShow,
		"version":      func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	plainUI(out).Info(version.GetVersion())
	return 0
}

// commandPath drops positional placeholders such as "<experience>" from a
// kong command string.
func commandPath(command string) string {
	fields := strings.Fields(command)
	kept := fields[:0]
	for _, field := range fields {
		if strings.HasPrefix(field, "<") {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := plainUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s android <@owner/slug> [--non-interactive]", cmd))
	ui.Info(fmt.Sprintf("  %s build status [--account <name>] [--limit <n>]", cmd))
	ui.Info(fmt.Sprintf("  %s config show", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(_ []string, err error, _ Dependencies, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected int value") {
		ui := plainUI(out)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.prod android @owner/app", cmd))
			return 1
		case strings.Contains(msg, "--config"):
			ui.Warn("`--config` expects a value. Provide a config file path.")
			ui.Info(fmt.Sprintf("Example: %s --config ./config.yaml config show", cmd))
			return 1
		case strings.Contains(msg, "--account"):
			ui.Warn("`-a/--account` expects a value. Provide an account name or omit the flag to use the configured account.")
			ui.Info(fmt.Sprintf("Example: %s build status --account acme", cmd))
			return 1
		case strings.Contains(msg, "--limit"):
			ui.Warn("`-n/--limit` expects a number.")
			ui.Info(fmt.Sprintf("Example: %s build status --limit 5", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Remote == nil {
		deps.Remote = func(ctx context.Context, cfg config.GlobalConfig) (Remote, error) {
			store, err := remote.NewStore(ctx, remote.AWSClientFactory{}, cfg)
			if err != nil {
				return nil, err
			}
			return store, nil
		}
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = func() bool { return interaction.IsTerminal(os.Stdin) }
	}
	return deps
}

// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Every command reports failures as "✗ <error>" with optional next steps.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru/credctl/cli/internal/credentials/views"
	"github.com/poruru/credctl/cli/internal/remote"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}

// exitWithSuggestion prints message followed by a "Next steps:" list.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := plainUI(out)
	ui.Warn(message)
	if len(suggestions) > 0 {
		ui.Info("Next steps:")
		for _, s := range suggestions {
			ui.Info("  - " + s)
		}
	}
	return 1
}

// exitWithCommandError prints err and, for errors a user can act on, one hint line.
func exitWithCommandError(out io.Writer, err error) int {
	code := exitWithError(out, err)
	if hint := hintFor(err); hint != "" {
		fmt.Fprintf(out, "Hint: %s\n", hint)
	}
	return code
}

func hintFor(err error) string {
	var guard *views.NonInteractiveError
	switch {
	case errors.As(err, &guard):
		return fmt.Sprintf("run the command from a terminal and omit %s (and unset %s).",
			guard.Flag, nonInteractiveEnvKey())
	case errors.Is(err, remote.ErrUnauthorized):
		return fmt.Sprintf("check the credentials in %s/%s or your AWS profile.",
			accessKeyEnv, secretKeyEnv)
	case errors.Is(err, remote.ErrNetwork):
		return "check the endpoint and region in `" + cliName() + " config show`."
	}
	return ""
}

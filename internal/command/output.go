// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction for commands.
package command

import (
	"io"

	"github.com/poruru/credctl/cli/internal/infra/ui"
)

// plainUI is used for usage, parse errors and version output.
func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewCLI(out, ui.Options{Emoji: true})
}

func commandUI(out io.Writer, cli CLI, deps Dependencies) ui.UserInterface {
	return ui.NewCLI(out, ui.Options{
		Emoji: !cli.NoEmoji,
		Links: deps.IsTerminal(),
	})
}

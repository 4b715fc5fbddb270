// Where: cli/internal/credentials/views/context.go
// What: Shared dependencies handed to every credential view.
// Why: Views receive collaborators explicitly instead of reaching for globals.
package views

import (
	"errors"

	"github.com/poruru/credctl/cli/internal/infra/interaction"
	"github.com/poruru/credctl/cli/internal/infra/ui"
	"github.com/poruru/credctl/cli/internal/remote"
	"go.uber.org/zap"
)

// Context is created once per command invocation and passed by pointer to each
// Open call. Views must not keep a reference to it after Open returns.
type Context struct {
	Android     remote.AndroidAPI
	Prompter    interaction.Prompter
	UI          ui.UserInterface
	Logger      *zap.Logger
	Interactive bool
	// User is the already-resolved account name, if any.
	User string
	// KeystoreDir receives downloaded keystores. Empty means the working directory.
	KeystoreDir string
}

func (c *Context) validate() error {
	switch {
	case c == nil:
		return errors.New("view context is nil")
	case c.Android == nil:
		return errors.New("view context: android client is not configured")
	case c.UI == nil:
		return errors.New("view context: user interface is not configured")
	case c.Interactive && c.Prompter == nil:
		return errors.New("view context: prompter is required in interactive mode")
	}
	return nil
}

func (c *Context) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

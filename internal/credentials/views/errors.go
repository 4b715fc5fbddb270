// Where: cli/internal/credentials/views/errors.go
// What: Errors raised by the view layer itself.
// Why: Callers tell a disabled-prompt guard apart from a dispatch bug with errors.Is.
package views

import (
	"errors"
	"fmt"
)

// NonInteractiveFlag is the CLI flag that disables prompting.
const NonInteractiveFlag = "--non-interactive"

var (
	ErrNonInteractive        = errors.New("interactive input required")
	ErrUnrecognizedSelection = errors.New("unrecognized selection")
	ErrScopeChanged          = errors.New("view changed experience scope")
)

// NonInteractiveError is returned when a view needs a choice but prompting is disabled.
type NonInteractiveError struct {
	Flag   string
	Reason string
}

func (e *NonInteractiveError) Error() string {
	return fmt.Sprintf("Start the CLI without the '%s' flag %s.", e.Flag, e.Reason)
}

func (e *NonInteractiveError) Is(target error) bool {
	return target == ErrNonInteractive
}

// UnrecognizedSelectionError means a view produced an action it never offered.
type UnrecognizedSelectionError struct {
	Kind   Kind
	Action Action
}

func (e *UnrecognizedSelectionError) Error() string {
	return fmt.Sprintf("unrecognized selection %q for %s view", string(e.Action), e.Kind)
}

func (e *UnrecognizedSelectionError) Is(target error) bool {
	return target == ErrUnrecognizedSelection
}

func requireInteractive(c *Context, reason string) error {
	if c.Interactive {
		return nil
	}
	return &NonInteractiveError{Flag: NonInteractiveFlag, Reason: reason}
}

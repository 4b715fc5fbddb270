// Where: cli/internal/infra/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based selection and masked input for credential views.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runPasswordPrompt = func(title string, input *string) error {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(input).
		Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runConfirmPrompt = func(title, description string, confirmed *bool) error {
	return huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(confirmed).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := runInputPrompt(title, suggestions, &input)
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", normalizeAbort(err))
	}
	return input, nil
}

func (p HuhPrompter) Password(title string) (string, error) {
	var input string
	err := runPasswordPrompt(title, &input)
	if err != nil {
		return "", fmt.Errorf("prompt password: %w", normalizeAbort(err))
	}
	return input, nil
}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	var selected string
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", fmt.Errorf("prompt select: %w", normalizeAbort(err))
	}
	return selected, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", fmt.Errorf("prompt select value: %w", normalizeAbort(err))
	}
	return selected, nil
}

func (p HuhPrompter) Confirm(title, description string) (bool, error) {
	var confirmed bool
	err := runConfirmPrompt(title, description, &confirmed)
	if err != nil {
		return false, fmt.Errorf("prompt confirm: %w", normalizeAbort(err))
	}
	return confirmed, nil
}

func normalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

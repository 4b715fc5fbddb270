// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction so views only decide what to ask.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl+C / Esc).
var ErrAborted = errors.New("prompt aborted by user")

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
	Password(title string) (string, error)
	Select(title string, options []string) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
	Confirm(title, description string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptYesNoWithIO prints a confirmation prompt to out and reads the answer from in.
func PromptYesNoWithIO(in io.Reader, out io.Writer, message string) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}

// LinePrompter is a Prompter that reads plain lines from a reader.
// It serves terminals where the huh TUI cannot run (dumb TERM, CI logs).
type LinePrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewLinePrompter returns a LinePrompter bound to in/out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{In: in, Out: out, reader: bufio.NewReader(in)}
}

func (p *LinePrompter) Input(title string, suggestions []string) (string, error) {
	if len(suggestions) > 0 {
		_, _ = fmt.Fprintf(p.Out, "%s [%s]: ", title, suggestions[0])
	} else {
		_, _ = fmt.Fprintf(p.Out, "%s: ", title)
	}
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	if line == "" && len(suggestions) > 0 {
		return suggestions[0], nil
	}
	return line, nil
}

func (p *LinePrompter) Password(title string) (string, error) {
	_, _ = fmt.Fprintf(p.Out, "%s: ", title)
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("prompt password: %w", err)
	}
	return line, nil
}

func (p *LinePrompter) Select(title string, options []string) (string, error) {
	values := make([]SelectOption, len(options))
	for i, opt := range options {
		values[i] = SelectOption{Label: opt, Value: opt}
	}
	return p.SelectValue(title, values)
}

func (p *LinePrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	_, _ = fmt.Fprintln(p.Out, title)
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.Out, "  %d) %s\n", i+1, opt.Label)
	}
	_, _ = fmt.Fprint(p.Out, "Choice: ")
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("prompt select value: %w", err)
	}
	var index int
	if _, err := fmt.Sscanf(line, "%d", &index); err != nil || index < 1 || index > len(options) {
		return "", fmt.Errorf("prompt select value: invalid choice %q", line)
	}
	return options[index-1].Value, nil
}

func (p *LinePrompter) Confirm(title, description string) (bool, error) {
	message := title
	if description != "" {
		message = title + " " + description
	}
	return PromptYesNoWithIO(p.buffered(), p.Out, message)
}

func (p *LinePrompter) buffered() *bufio.Reader {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.buffered().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrAborted
	}
	return strings.TrimSpace(line), nil
}

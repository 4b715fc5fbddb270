// Where: cli/internal/infra/ui/ui.go
// What: UserInterface adapter used by views and commands.
// Why: Give the workflow layer one output surface for messages, blocks, tables and links.
package ui

import (
	"fmt"
	"io"
	"os"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by views and commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	NewLine()
	Block(emoji, title string, rows []KeyValue)
	Table(columns []Column, rows [][]string)
	Link(label, url string) string
}

// Options controls optional terminal features.
type Options struct {
	Emoji bool
	Links bool
}

// NewCLI returns a UserInterface writing to out.
func NewCLI(out io.Writer, opts Options) UserInterface {
	if out == nil {
		out = os.Stdout
	}
	return cliUI{
		out:     out,
		console: NewWithEmoji(out, opts.Emoji),
		links:   opts.Links,
	}
}

type cliUI struct {
	out     io.Writer
	console *Console
	links   bool
}

func (c cliUI) Info(msg string) {
	c.console.Info(msg)
}

func (c cliUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c cliUI) Success(msg string) {
	c.console.Success(msg)
}

func (c cliUI) NewLine() {
	c.console.NewLine()
}

func (c cliUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

func (c cliUI) Table(columns []Column, rows [][]string) {
	rendered := RenderTable(columns, rows)
	if rendered == "" {
		return
	}
	fmt.Fprintln(c.out, rendered)
}

func (c cliUI) Link(label, url string) string {
	if c.links {
		return Hyperlink(label, url)
	}
	return PlainLink(label, url)
}

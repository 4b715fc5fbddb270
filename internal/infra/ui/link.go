// Where: cli/internal/infra/ui/link.go
// What: Terminal hyperlink helpers.
// Why: Long URLs are shown as short labels that still open the full target.
package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// Hyperlink wraps label in an OSC 8 hyperlink pointing at url.
func Hyperlink(label, url string) string {
	if url == "" {
		return label
	}
	return ansi.SetHyperlink(url) + label + ansi.ResetHyperlink()
}

// PlainLink renders label and url for terminals without hyperlink support.
func PlainLink(label, url string) string {
	if url == "" || label == url {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, url)
}

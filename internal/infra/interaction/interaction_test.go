// Where: cli/internal/infra/interaction/interaction_test.go
// What: Tests for terminal detection and line-based prompts.
// Why: Keep non-interactive detection deterministic in tests.
package interaction

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestIsTerminalNilAndPipe(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatal("IsTerminal(nil) must be false")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()
	if IsTerminal(r) {
		t.Fatal("IsTerminal(pipe) must be false")
	}
}

func TestPromptYesNoWithIO(t *testing.T) {
	var out bytes.Buffer
	ok, err := PromptYesNoWithIO(strings.NewReader("Yes\n"), &out, "Remove?")
	if err != nil {
		t.Fatalf("PromptYesNoWithIO() error = %v", err)
	}
	if !ok {
		t.Fatal("expected yes")
	}
	if out.String() != "Remove? [y/N]: " {
		t.Fatalf("prompt output = %q", out.String())
	}

	ok, err = PromptYesNoWithIO(strings.NewReader(""), &out, "Remove?")
	if err != nil || ok {
		t.Fatalf("empty answer must be no, got %v, %v", ok, err)
	}
}

func TestLinePrompterSelectValue(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("2\n"), &out)

	got, err := p.SelectValue("What do you want to do?", []SelectOption{
		{Label: "Update upload Keystore", Value: "update-keystore"},
		{Label: "Remove keystore", Value: "remove-keystore"},
	})
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "remove-keystore" {
		t.Fatalf("SelectValue() = %q", got)
	}
	if !strings.Contains(out.String(), "  2) Remove keystore") {
		t.Fatalf("menu not rendered: %q", out.String())
	}
}

func TestLinePrompterSelectValueRejectsOutOfRange(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("9\n"), &bytes.Buffer{})
	if _, err := p.SelectValue("Pick", []SelectOption{{Label: "a", Value: "a"}}); err == nil {
		t.Fatal("expected invalid choice error")
	}
}

func TestLinePrompterInputDefaultsToSuggestion(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\nkey-pass\n"), &bytes.Buffer{})
	got, err := p.Input("Key alias", []string{"upload"})
	if err != nil || got != "upload" {
		t.Fatalf("Input() = %q, %v", got, err)
	}
	got, err = p.Password("Key password")
	if err != nil || got != "key-pass" {
		t.Fatalf("Password() = %q, %v", got, err)
	}
}

func TestLinePrompterEOFAborts(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Input("Key alias", nil)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

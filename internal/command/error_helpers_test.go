package command

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/poruru/credctl/cli/internal/credentials/views"
	"github.com/poruru/credctl/cli/internal/remote"
)

var (
	errTestError      = errors.New("test error")
	errSomeOtherError = errors.New("some other error")
)

func TestExitWithError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var buf bytes.Buffer
	code := exitWithError(&buf, errTestError)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	want := "✗ test error\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestExitWithSuggestion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var buf bytes.Buffer
	code := exitWithSuggestion(&buf, "Something went wrong.", []string{"try this", "or that"})

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	output := buf.String()
	if !strings.Contains(output, "⚠️ Something went wrong.") {
		t.Errorf("missing error message in output: %s", output)
	}
	if !strings.Contains(output, "Next steps:") {
		t.Errorf("missing 'Next steps:' in output: %s", output)
	}
	if !strings.Contains(output, "try this") {
		t.Errorf("missing suggestion in output: %s", output)
	}
}

func TestExitWithCommandErrorHints(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name:     "non-interactive",
			err:      &views.NonInteractiveError{Flag: views.NonInteractiveFlag, Reason: "to manage keystores"},
			wantHint: "Hint: run the command from a terminal and omit --non-interactive (and unset CREDCTL_NON_INTERACTIVE).",
		},
		{
			name:     "wrapped non-interactive",
			err:      fmt.Errorf("android: %w", &views.NonInteractiveError{Flag: views.NonInteractiveFlag}),
			wantHint: "Hint: run the command from a terminal",
		},
		{
			name:     "unauthorized",
			err:      &remote.Error{Op: "fetch credentials", Kind: remote.KindUnauthorized, Err: errTestError},
			wantHint: "Hint: check the credentials in CREDCTL_ACCESS_KEY_ID/CREDCTL_SECRET_ACCESS_KEY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if code := exitWithCommandError(&buf, tt.err); code != 1 {
				t.Fatalf("exit code = %d", code)
			}
			output := buf.String()
			if !strings.HasPrefix(output, "✗ "+tt.err.Error()+"\n") {
				t.Fatalf("output = %q", output)
			}
			if !strings.Contains(output, tt.wantHint) {
				t.Fatalf("missing hint %q in %q", tt.wantHint, output)
			}
		})
	}
}

func TestExitWithCommandErrorWithoutHint(t *testing.T) {
	var buf bytes.Buffer
	exitWithCommandError(&buf, errTestError)
	if buf.String() != "✗ test error\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestHandleParseError_GenericError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var buf bytes.Buffer
	code := handleParseError([]string{"build"}, errSomeOtherError, Dependencies{}, &buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	output := buf.String()
	if !strings.Contains(output, "✗ some other error") {
		t.Errorf("expected error to be printed: %s", output)
	}
}

func TestHandleParseError_MissingFlagValue(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New("--account: expected string value but got \"EOL\" (<EOL>)")
	if code := handleParseError([]string{"build", "status", "--account"}, err, Dependencies{}, &buf); code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "build status --account acme") {
		t.Fatalf("output = %q", buf.String())
	}
}

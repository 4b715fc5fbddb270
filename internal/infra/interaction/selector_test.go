package interaction

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle string
	var gotSuggestions []string
	runInputPrompt = func(title string, suggestions []string, input *string) error {
		gotTitle = title
		gotSuggestions = append([]string(nil), suggestions...)
		*input = "upload"
		return nil
	}

	got, err := (HuhPrompter{}).Input("Key alias", []string{"upload", "release"})
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "upload" {
		t.Fatalf("Input() = %q, want %q", got, "upload")
	}
	if gotTitle != "Key alias" {
		t.Fatalf("title = %q", gotTitle)
	}
	if len(gotSuggestions) != 2 || gotSuggestions[0] != "upload" || gotSuggestions[1] != "release" {
		t.Fatalf("suggestions = %#v", gotSuggestions)
	}
}

func TestHuhPrompterInputWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, []string, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Input("Key alias", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt input: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterPasswordUsesRunner(t *testing.T) {
	orig := runPasswordPrompt
	t.Cleanup(func() { runPasswordPrompt = orig })
	runPasswordPrompt = func(title string, input *string) error {
		if title != "Keystore password" {
			t.Fatalf("title = %q", title)
		}
		*input = "s3cret"
		return nil
	}

	got, err := (HuhPrompter{}).Password("Keystore password")
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("Password() = %q", got)
	}
}

func TestHuhPrompterSelectUsesRunner(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var gotTitle string
	var gotOptions int
	runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
		gotTitle = title
		gotOptions = len(options)
		*selected = "jks"
		return nil
	}

	got, err := (HuhPrompter{}).Select("Keystore type", []string{"jks", "pkcs12"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "jks" {
		t.Fatalf("Select() = %q, want %q", got, "jks")
	}
	if gotTitle != "Keystore type" {
		t.Fatalf("title = %q", gotTitle)
	}
	if gotOptions != 2 {
		t.Fatalf("options len = %d, want 2", gotOptions)
	}
}

func TestHuhPrompterSelectWrapsError(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		return errors.New("select failed")
	}

	_, err := (HuhPrompter{}).Select("Keystore type", []string{"jks"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt select: select failed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterSelectValueEmptyOptionsReturnsEmpty(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	called := false
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		called = true
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Action", nil)
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "" {
		t.Fatalf("SelectValue() = %q, want empty", got)
	}
	if called {
		t.Fatal("runner must not be called for empty options")
	}
}

func TestHuhPrompterSelectValueMapsAbort(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		return huh.ErrUserAborted
	}

	_, err := (HuhPrompter{}).SelectValue("Action", []SelectOption{{Label: "Remove keystore", Value: "remove-keystore"}})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestHuhPrompterConfirmUsesRunner(t *testing.T) {
	orig := runConfirmPrompt
	t.Cleanup(func() { runConfirmPrompt = orig })
	var gotDescription string
	runConfirmPrompt = func(_ string, description string, confirmed *bool) error {
		gotDescription = description
		*confirmed = true
		return nil
	}

	ok, err := (HuhPrompter{}).Confirm("Remove keystore?", "This cannot be undone.")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !ok {
		t.Fatal("Confirm() = false, want true")
	}
	if gotDescription != "This cannot be undone." {
		t.Fatalf("description = %q", gotDescription)
	}
}

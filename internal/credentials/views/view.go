// Where: cli/internal/credentials/views/view.go
// What: View and Step contracts for the credential wizard.
// Why: A closed set of screens returning the next screen keeps navigation explicit.
package views

import (
	"context"
	"fmt"
)

// Kind identifies one of the closed set of credential screens.
type Kind int

const (
	KindExperience Kind = iota + 1
	KindUpdateKeystore
	KindRemoveKeystore
	KindUpdateFcmKey
	KindDownloadKeystore
)

func (k Kind) String() string {
	switch k {
	case KindExperience:
		return "experience"
	case KindUpdateKeystore:
		return "update-keystore"
	case KindRemoveKeystore:
		return "remove-keystore"
	case KindUpdateFcmKey:
		return "update-fcm-key"
	case KindDownloadKeystore:
		return "download-keystore"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// View is one screen of the wizard. The interface is sealed: only this package
// defines views, so Transition can stay exhaustive.
type View interface {
	Kind() Kind
	// Experience is the entity every side effect of the view is scoped to.
	Experience() string
	Open(ctx context.Context, c *Context) (Step, error)

	sealed()
}

// Step is the result of Open: either continue with exactly one view, or done.
type Step struct {
	next    View
	proceed bool
}

// Continue returns a Step moving navigation to v.
func Continue(v View) Step {
	return Step{next: v, proceed: true}
}

// Done returns the terminal Step.
func Done() Step {
	return Step{}
}

// Next returns the view to open next, or ok=false when navigation is done.
func (s Step) Next() (View, bool) {
	if !s.proceed {
		return nil, false
	}
	return s.next, true
}

// IsDone reports whether s terminates navigation.
func (s Step) IsDone() bool {
	return !s.proceed
}

func (s Step) String() string {
	if !s.proceed {
		return "done"
	}
	if s.next == nil {
		return "continue(<nil>)"
	}
	return fmt.Sprintf("continue(%s %q)", s.next.Kind(), s.next.Experience())
}

// scope carries the experience name shared by every view.
type scope struct {
	experience string
}

func (s scope) Experience() string { return s.experience }

func (scope) sealed() {}

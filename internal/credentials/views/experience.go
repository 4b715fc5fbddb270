// Where: cli/internal/credentials/views/experience.go
// What: Entry screen listing an experience's Android credentials.
// Why: Shows current state, then lets the user pick what to manage next.
package views

import (
	"context"
	"fmt"
)

// ExperienceView shows the credentials of one experience and offers actions.
type ExperienceView struct {
	scope
}

// NewExperienceView returns the entry view for experience.
func NewExperienceView(experience string) *ExperienceView {
	return &ExperienceView{scope{experience: experience}}
}

func (v *ExperienceView) Kind() Kind { return KindExperience }

func (v *ExperienceView) Open(ctx context.Context, c *Context) (Step, error) {
	creds, err := c.Android.FetchCredentials(ctx, v.experience)
	if err != nil {
		return Step{}, err
	}

	if creds.IsEmpty() {
		c.UI.Info(fmt.Sprintf("No credentials available for %s experience.", v.experience))
		c.UI.NewLine()
	} else if v.experience != "" {
		c.UI.NewLine()
		displayAndroidCredentials(c.UI, creds)
		c.UI.NewLine()
	}

	if err := requireInteractive(c, "to manage keystores"); err != nil {
		return Step{}, err
	}

	selected, err := c.Prompter.SelectValue("What do you want to do?", selectOptions(experienceMenu))
	if err != nil {
		return Step{}, err
	}
	return Transition(v, Action(selected))
}

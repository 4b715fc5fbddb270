// Where: cli/internal/credentials/views/push.go
// What: FCM push credential screen.
package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UpdateFcmKeyView stores a new Firebase Cloud Messaging server key.
type UpdateFcmKeyView struct {
	scope
}

func NewUpdateFcmKeyView(experience string) *UpdateFcmKeyView {
	return &UpdateFcmKeyView{scope{experience: experience}}
}

func (v *UpdateFcmKeyView) Kind() Kind { return KindUpdateFcmKey }

func (v *UpdateFcmKeyView) Open(ctx context.Context, c *Context) (Step, error) {
	if err := requireInteractive(c, "to update the FCM Api Key"); err != nil {
		return Step{}, err
	}

	key, err := c.Prompter.Password("FCM Api Key")
	if err != nil {
		return Step{}, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Step{}, errors.New("FCM Api Key cannot be empty")
	}

	if err := c.Android.UpdateFcmKey(ctx, v.experience, key); err != nil {
		return Step{}, err
	}
	c.UI.Success(fmt.Sprintf("Updated FCM Api Key for %s.", v.experience))
	return Done(), nil
}

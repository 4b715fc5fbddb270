// Where: cli/internal/credentials/views/dispatch.go
// What: Closed mapping from offered menu actions to the next view.
// Why: Every option a view offers must lead somewhere, and nothing else may.
package views

import "github.com/poruru/credctl/cli/internal/infra/interaction"

// Action is the value of a menu option.
type Action string

const (
	ActionUpdateKeystore Action = "update-keystore"
	ActionRemoveKeystore Action = "remove-keystore"
	ActionUpdateFcmKey   Action = "update-fcm-key"
	ActionFetchKeystore  Action = "fetch-keystore"
)

type menuOption struct {
	action Action
	label  string
}

var experienceMenu = []menuOption{
	{action: ActionUpdateKeystore, label: "Update upload Keystore"},
	{action: ActionRemoveKeystore, label: "Remove keystore"},
	{action: ActionUpdateFcmKey, label: "Update FCM Api Key"},
	{action: ActionFetchKeystore, label: "Download Keystore from the Expo servers"},
}

// Offered returns the actions a view of kind presents, in prompt order.
func Offered(kind Kind) []Action {
	menu := menuFor(kind)
	actions := make([]Action, len(menu))
	for i, opt := range menu {
		actions[i] = opt.action
	}
	return actions
}

func menuFor(kind Kind) []menuOption {
	switch kind {
	case KindExperience:
		return experienceMenu
	default:
		return nil
	}
}

func selectOptions(menu []menuOption) []interaction.SelectOption {
	options := make([]interaction.SelectOption, len(menu))
	for i, opt := range menu {
		options[i] = interaction.SelectOption{Label: opt.label, Value: string(opt.action)}
	}
	return options
}

// Transition maps (from, action) to the next step. The next view keeps the
// experience of from. Pairs outside the offered menus are errors, never Done.
func Transition(from View, action Action) (Step, error) {
	experience := from.Experience()
	switch from.Kind() {
	case KindExperience:
		switch action {
		case ActionUpdateKeystore:
			return Continue(NewUpdateKeystoreView(experience)), nil
		case ActionRemoveKeystore:
			return Continue(NewRemoveKeystoreView(experience)), nil
		case ActionUpdateFcmKey:
			return Continue(NewUpdateFcmKeyView(experience)), nil
		case ActionFetchKeystore:
			return Continue(NewDownloadKeystoreView(experience)), nil
		}
	}
	return Step{}, &UnrecognizedSelectionError{Kind: from.Kind(), Action: action}
}

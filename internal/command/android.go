// Where: cli/internal/command/android.go
// What: android command adapter.
// Why: Build the view context once and hand navigation to the credential views.
package command

import (
	"errors"
	"io"
	"strings"

	"github.com/poruru/credctl/cli/internal/credentials/views"
	"github.com/poruru/credctl/cli/internal/infra/config"
	"github.com/poruru/credctl/cli/internal/infra/interaction"
	"go.uber.org/zap"
)

func runAndroid(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := openSession(cli)
	if err != nil {
		return exitWithError(out, err)
	}
	defer sess.close()

	interactive, err := interactiveMode(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.HuhPrompter{}
	}

	experience, err := resolveExperience(cli.Android.Experience, interactive, prompter, sess.config)
	if err != nil {
		return exitWithCommandError(out, err)
	}

	client, err := deps.Remote(deps.Context, sess.config)
	if err != nil {
		return exitWithError(out, err)
	}

	c := &views.Context{
		Android:     client,
		UI:          commandUI(out, cli, deps),
		Logger:      sess.logger,
		Interactive: interactive,
		User:        sess.config.Account,
		KeystoreDir: deps.KeystoreDir,
	}
	if interactive {
		c.Prompter = prompter
	}

	if err := views.Run(deps.Context, c, views.NewExperienceView(experience)); err != nil {
		sess.logger.Debug("android command failed", zap.Error(err))
		return exitWithCommandError(out, err)
	}

	rememberExperience(sess, experience)
	return 0
}

// resolveExperience returns the positional experience, or asks for one when
// prompting is allowed.
func resolveExperience(arg string, interactive bool, prompter interaction.Prompter, cfg config.GlobalConfig) (string, error) {
	if name := strings.TrimSpace(arg); name != "" {
		return name, nil
	}
	if !interactive {
		return "", &views.NonInteractiveError{
			Flag:   views.NonInteractiveFlag,
			Reason: "or pass the experience name as an argument",
		}
	}
	name, err := prompter.Input("Experience name (@owner/slug)", cfg.RecentExperiences)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("experience name is required")
	}
	return name, nil
}

// rememberExperience updates the file contents, not the env-overlaid config.
func rememberExperience(sess session, experience string) {
	stored, err := config.LoadGlobalConfigOrDefault(sess.configPath)
	if err != nil {
		sess.logger.Debug("reload config failed", zap.Error(err))
		return
	}
	cfg := config.RememberExperience(stored, experience)
	if err := config.SaveGlobalConfig(sess.configPath, cfg); err != nil {
		sess.logger.Debug("save recent experiences failed", zap.Error(err))
	}
}

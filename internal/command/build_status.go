// Where: cli/internal/command/build_status.go
// What: build status command adapter.
// Why: List recent builds with their artifact and logs links.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/poruru/credctl/cli/internal/buildstatus"
	"github.com/poruru/credctl/cli/internal/constants"
	"github.com/poruru/credctl/cli/internal/infra/envutil"
	"github.com/poruru/credctl/cli/internal/infra/urlutil"
	"go.uber.org/zap"
)

func runBuildStatus(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := openSession(cli)
	if err != nil {
		return exitWithError(out, err)
	}
	defer sess.close()

	cmd := cli.Build.Status
	account := strings.TrimSpace(cmd.Account)
	if account == "" {
		account = sess.config.Account
	}
	if account == "" {
		return exitWithSuggestion(out, "No account selected.", []string{
			fmt.Sprintf("%s build status --account <name>", cliName()),
			fmt.Sprintf("set %s or `account` in %s", envutil.HostEnvKey(constants.HostSuffixAccount), sess.configPath),
		})
	}
	if cmd.Limit < 0 {
		return exitWithError(out, fmt.Errorf("limit must not be negative: %d", cmd.Limit))
	}

	urls, err := urlutil.NewBuilder(sess.config.WebsiteURL, sess.config.LogsURLTemplate)
	if err != nil {
		return exitWithError(out, err)
	}

	client, err := deps.Remote(deps.Context, sess.config)
	if err != nil {
		return exitWithError(out, err)
	}
	list, err := client.ListBuilds(deps.Context, account, cmd.Limit)
	if err != nil {
		return exitWithCommandError(out, err)
	}
	sess.logger.Debug("builds listed", zap.String("account", account), zap.Int("count", len(list)))

	ui := commandUI(out, cli, deps)
	if len(list) == 0 {
		ui.Info(fmt.Sprintf("No builds found for %s.", account))
		return 0
	}

	buildstatus.PrintBuildTable(ui, list)
	ui.NewLine()
	currentUser := sess.config.Account
	if currentUser == "" {
		currentUser = account
	}
	if err := buildstatus.PrintLogsURLs(ui, urls, account, currentUser, list); err != nil {
		return exitWithError(out, err)
	}
	buildstatus.PrintBuildResults(ui, list)
	return 0
}

// Where: cli/internal/command/config_cmd.go
// What: config show command.
// Why: Let users see which tables, bucket and endpoint a command will use.
package command

import (
	"io"
	"strings"

	"github.com/poruru/credctl/cli/internal/infra/ui"
)

func runConfigShow(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := openSession(cli)
	if err != nil {
		return exitWithError(out, err)
	}
	defer sess.close()

	cfg := sess.config
	rows := []ui.KeyValue{
		{Key: "Path", Value: sess.configPath},
		{Key: "Account", Value: orDash(cfg.Account)},
		{Key: "Region", Value: cfg.Region},
		{Key: "Endpoint", Value: orDash(cfg.Endpoint)},
		{Key: "Credentials table", Value: cfg.CredentialsTable},
		{Key: "Builds table", Value: cfg.BuildsTable},
		{Key: "Keystore bucket", Value: cfg.KeystoreBucket},
		{Key: "Website", Value: cfg.WebsiteURL},
		{Key: "Logs url template", Value: cfg.LogsURLTemplate},
		{Key: "Recent experiences", Value: orDash(strings.Join(cfg.RecentExperiences, ", "))},
	}
	commandUI(out, cli, deps).Block("⚙️", "Configuration", rows)
	return 0
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

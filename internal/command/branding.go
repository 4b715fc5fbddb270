// Where: cli/internal/command/branding.go
// What: Brand-aware CLI naming.
// Why: Keep user-facing command names consistent with the current brand.
package command

import (
	"os"
	"strings"

	"github.com/poruru/credctl/cli/internal/constants"
	"github.com/poruru/credctl/cli/internal/infra/envutil"
	"github.com/poruru/credctl/cli/internal/meta"
)

const (
	accessKeyEnv = constants.EnvAccessKey
	secretKeyEnv = constants.EnvSecretKey
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "credctl"
	}
	return name
}

func nonInteractiveEnvKey() string {
	return envutil.HostEnvKey(constants.HostSuffixNonInteractive)
}

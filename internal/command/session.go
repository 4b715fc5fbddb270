// Where: cli/internal/command/session.go
// What: Per-invocation setup shared by commands (config, logger, mode).
// Why: Commands resolve configuration and interactivity the same way.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru/credctl/cli/internal/constants"
	"github.com/poruru/credctl/cli/internal/infra/config"
	"github.com/poruru/credctl/cli/internal/infra/envutil"
	"github.com/poruru/credctl/cli/internal/infra/logging"
	"go.uber.org/zap"
)

type session struct {
	configPath string
	config     config.GlobalConfig
	logger     *zap.Logger
}

func openSession(cli CLI) (session, error) {
	path, err := resolveConfigPath(cli)
	if err != nil {
		return session{}, err
	}
	cfg, err := config.LoadGlobalConfigOrDefault(path)
	if err != nil {
		return session{}, err
	}
	cfg = config.ApplyEnv(cfg)

	logger, err := logging.New(cli.Verbose)
	if err != nil {
		return session{}, err
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint))
	return session{configPath: path, config: cfg, logger: logger}, nil
}

func (s session) close() {
	_ = s.logger.Sync()
}

func resolveConfigPath(cli CLI) (string, error) {
	if path := strings.TrimSpace(cli.ConfigPath); path != "" {
		return path, nil
	}
	return config.GlobalConfigPath()
}

// interactiveMode reports whether views may prompt. The flag and the
// CREDCTL_NON_INTERACTIVE env var both disable prompting, as does a non-TTY stdin.
func interactiveMode(cli CLI, deps Dependencies) (bool, error) {
	if cli.NonInteractive {
		return false, nil
	}
	disabled, ok, err := envutil.HostEnvBool(constants.HostSuffixNonInteractive)
	if err != nil {
		return false, fmt.Errorf("resolve interactive mode: %w", err)
	}
	if ok && disabled {
		return false, nil
	}
	return deps.IsTerminal(), nil
}

// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru/credctl/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the brand prefix with the given suffix.
// Example: HostEnvKey("ACCOUNT") returns "CREDCTL_ACCOUNT".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.ToUpper(strings.TrimSpace(suffix))
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
// Example: GetHostEnv("ACCOUNT") returns the value of CREDCTL_ACCOUNT.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// HostEnvBool parses a host-level boolean. Unset values report ok=false.
func HostEnvBool(suffix string) (value bool, ok bool, err error) {
	raw := GetHostEnv(suffix)
	if raw == "" {
		return false, false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("parse %s: %w", HostEnvKey(suffix), err)
	}
	return parsed, true, nil
}

// SetHostEnv sets a host-level environment variable.
// Example: SetHostEnv("ACCOUNT", "jane") sets CREDCTL_ACCOUNT=jane.
func SetHostEnv(suffix, value string) error {
	key := HostEnvKey(suffix)
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}

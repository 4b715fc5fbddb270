// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes resolved through envutil.HostEnvKey (CREDCTL_<suffix>).
const (
	HostSuffixHome           = "HOME"
	HostSuffixConfig         = "CONFIG"
	HostSuffixAccount        = "ACCOUNT"
	HostSuffixRegion         = "REGION"
	HostSuffixEndpoint       = "ENDPOINT"
	HostSuffixNonInteractive = "NON_INTERACTIVE"
)

// Remote store credentials. Unset values fall back to the SDK default chain.
const (
	EnvAccessKey = "CREDCTL_ACCESS_KEY_ID"
	EnvSecretKey = "CREDCTL_SECRET_ACCESS_KEY"
	EnvAWSRegion = "AWS_REGION"
)

// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand names and on-disk layout in one place.
package meta

const (
	// Project Identity
	AppName   = "credctl"
	Slug      = "credctl"
	EnvPrefix = "CREDCTL"

	// Directory Layout
	HomeDir        = ".credctl"
	ConfigFilename = "config.yaml"

	// Keystore Constants
	KeystoreExt        = ".jks"
	KeystoreObjectRoot = "android/keystores"
)

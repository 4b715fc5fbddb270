// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report the module version and VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns "<module version> (<revision>[, dirty])".
// It returns "dev" if build info is not available.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	mainVersion := info.Main.Version
	if mainVersion == "" || mainVersion == "(devel)" {
		mainVersion = "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	switch {
	case revision == "":
		return mainVersion
	case modified:
		return fmt.Sprintf("%s (%s, dirty)", mainVersion, revision)
	default:
		return fmt.Sprintf("%s (%s)", mainVersion, revision)
	}
}

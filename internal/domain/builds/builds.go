// Where: cli/internal/domain/builds/builds.go
// What: Remote build status records.
// Why: Shared shape between the build store and build status reporting.
package builds

import "time"

// Build statuses reported by the remote build service.
const (
	StatusInQueue    = "in-queue"
	StatusInProgress = "in-progress"
	StatusFinished   = "finished"
	StatusErrored    = "errored"
	StatusCanceled   = "canceled"
)

// Artifacts lists downloadable build outputs.
type Artifacts struct {
	BuildURL string
	LogsURL  string
}

// Info describes a single build.
type Info struct {
	ID        string
	Platform  string
	Status    string
	CreatedAt time.Time
	Artifacts *Artifacts
}

// BuildURL returns the artifact URL or an empty string.
func (b Info) BuildURL() string {
	if b.Artifacts == nil {
		return ""
	}
	return b.Artifacts.BuildURL
}

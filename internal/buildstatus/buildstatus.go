// Where: cli/internal/buildstatus/buildstatus.go
// What: Build status reporting (table, logs URLs, artifact URLs).
// Why: The build status command and any future build workflow print builds the same way.
package buildstatus

import (
	"fmt"
	"strings"

	"github.com/poruru/credctl/cli/internal/domain/builds"
	"github.com/poruru/credctl/cli/internal/infra/ui"
)

const (
	// StartedLayout formats the build start time, e.g. "Mar 07, 2026, 09:15 AM".
	StartedLayout = "Jan 02, 2006, 03:04 PM"
	// ArtifactLabelLimit is the number of runes of an artifact URL kept in the label.
	ArtifactLabelLimit = 38
	// NotAvailable fills the artifact column of builds without an artifact.
	NotAvailable = "not available"
)

// Columns of the build table. The artifact column stays unbounded: labels are
// cut before linking so the hyperlink terminator always survives.
var Columns = []ui.Column{
	{Header: "started", MaxWidth: 24},
	{Header: "platform", MaxWidth: 10},
	{Header: "status", MaxWidth: 13},
	{Header: "artifact"},
}

// LinkFunc renders label as a link to url.
type LinkFunc func(label, url string) string

// LogsURLBuilder renders the website logs page of a build.
type LogsURLBuilder interface {
	BuildLogsURL(buildID, username string) (string, error)
}

// Rows converts builds to table rows, rendering artifacts through link.
func Rows(list []builds.Info, link LinkFunc) [][]string {
	rows := make([][]string, 0, len(list))
	for _, build := range list {
		rows = append(rows, []string{
			formatStarted(build),
			build.Platform,
			strings.ReplaceAll(build.Status, "-", " "),
			artifactCell(build.BuildURL(), link),
		})
	}
	return rows
}

// PrintBuildTable prints builds as a table with linked artifacts.
func PrintBuildTable(out ui.UserInterface, list []builds.Info) {
	out.Table(Columns, Rows(list, out.Link))
}

// PrintLogsURLs prints the logs page of each build. A single build is shown
// under account; several builds are shown under currentUser, one per platform.
func PrintLogsURLs(out ui.UserInterface, urls LogsURLBuilder, account, currentUser string, list []builds.Info) error {
	if len(list) == 1 {
		url, err := urls.BuildLogsURL(list[0].ID, account)
		if err != nil {
			return err
		}
		out.Info(fmt.Sprintf("Logs url: %s", url))
		return nil
	}
	for _, build := range list {
		url, err := urls.BuildLogsURL(build.ID, currentUser)
		if err != nil {
			return err
		}
		out.Info(fmt.Sprintf("Platform: %s, Logs url: %s", build.Platform, url))
	}
	return nil
}

// PrintBuildResults prints artifact URLs. With several builds only finished
// ones are listed.
func PrintBuildResults(out ui.UserInterface, list []builds.Info) {
	if len(list) == 1 {
		out.Info(fmt.Sprintf("Artifact url: %s", list[0].BuildURL()))
		return
	}
	for _, build := range list {
		if build.Status != builds.StatusFinished {
			continue
		}
		out.Info(fmt.Sprintf("Platform: %s, Artifact url: %s", build.Platform, build.BuildURL()))
	}
}

// TruncateLabel keeps the first ArtifactLabelLimit runes of url and appends "…".
func TruncateLabel(url string) string {
	runes := []rune(url)
	if len(runes) <= ArtifactLabelLimit {
		return url
	}
	return string(runes[:ArtifactLabelLimit]) + "…"
}

func artifactCell(url string, link LinkFunc) string {
	if url == "" {
		return NotAvailable
	}
	label := TruncateLabel(url)
	if link == nil {
		return label
	}
	return link(label, url)
}

func formatStarted(build builds.Info) string {
	if build.CreatedAt.IsZero() {
		return ""
	}
	return build.CreatedAt.Local().Format(StartedLayout)
}

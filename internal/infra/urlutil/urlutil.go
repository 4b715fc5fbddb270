// Where: cli/internal/infra/urlutil/urlutil.go
// What: Website URL construction for builds.
// Why: Logs URLs follow a configurable template so self-hosted dashboards work too.
package urlutil

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Builder renders build URLs from a text/template with sprig functions.
type Builder struct {
	baseURL string
	logs    *template.Template
}

type logsData struct {
	BaseURL  string
	Username string
	BuildID  string
}

// NewBuilder parses logsTemplate. Fields: .BaseURL, .Username, .BuildID.
func NewBuilder(baseURL, logsTemplate string) (*Builder, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("website url is required")
	}
	tmpl, err := template.New("logs-url").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(logsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse logs url template: %w", err)
	}
	return &Builder{baseURL: baseURL, logs: tmpl}, nil
}

// BuildLogsURL returns the page showing logs of buildID owned by username.
func (b *Builder) BuildLogsURL(buildID, username string) (string, error) {
	if strings.TrimSpace(buildID) == "" {
		return "", fmt.Errorf("build id is required")
	}
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("username is required")
	}
	var buf bytes.Buffer
	err := b.logs.Execute(&buf, logsData{
		BaseURL:  b.baseURL,
		Username: username,
		BuildID:  buildID,
	})
	if err != nil {
		return "", fmt.Errorf("render logs url: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

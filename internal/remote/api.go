// Where: cli/internal/remote/api.go
// What: Remote credential and build API contracts.
// Why: Views and commands depend on these narrow interfaces, never on SDK clients.
package remote

import (
	"context"

	"github.com/poruru/credctl/cli/internal/domain/builds"
	"github.com/poruru/credctl/cli/internal/domain/credentials"
)

// AndroidAPI manages Android credentials for one experience at a time.
// Every method is a single request from the caller's point of view.
type AndroidAPI interface {
	FetchCredentials(ctx context.Context, experience string) (credentials.AppCredentials, error)
	UpdateKeystore(ctx context.Context, experience string, keystore credentials.Keystore) error
	RemoveKeystore(ctx context.Context, experience string) error
	UpdateFcmKey(ctx context.Context, experience string, key string) error
	// DownloadKeystore reports ok=false when no keystore is stored.
	DownloadKeystore(ctx context.Context, experience string) (keystore credentials.Keystore, ok bool, err error)
}

// BuildAPI lists builds for an account, newest first.
type BuildAPI interface {
	ListBuilds(ctx context.Context, account string, limit int) ([]builds.Info, error)
}

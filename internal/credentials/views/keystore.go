// Where: cli/internal/credentials/views/keystore.go
// What: Upload keystore screens (update, remove, download).
// Why: Each keystore mutation is one screen ending the navigation when applied.
package views

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/poruru/credctl/cli/internal/domain/credentials"
	"github.com/poruru/credctl/cli/internal/infra/fileops"
	"github.com/poruru/credctl/cli/internal/infra/ui"
	"github.com/poruru/credctl/cli/internal/meta"
	"go.uber.org/zap"
)

// UpdateKeystoreView uploads a keystore file from disk.
type UpdateKeystoreView struct {
	scope
}

func NewUpdateKeystoreView(experience string) *UpdateKeystoreView {
	return &UpdateKeystoreView{scope{experience: experience}}
}

func (v *UpdateKeystoreView) Kind() Kind { return KindUpdateKeystore }

func (v *UpdateKeystoreView) Open(ctx context.Context, c *Context) (Step, error) {
	if err := requireInteractive(c, "to upload a keystore"); err != nil {
		return Step{}, err
	}

	path, err := c.Prompter.Input("Path to the keystore file", []string{keystoreFilename(v.experience)})
	if err != nil {
		return Step{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Step{}, errors.New("keystore path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Step{}, fmt.Errorf("read keystore: %w", err)
	}

	alias, err := c.Prompter.Input("Key alias", nil)
	if err != nil {
		return Step{}, err
	}
	storePassword, err := c.Prompter.Password("Keystore password")
	if err != nil {
		return Step{}, err
	}
	keyPassword, err := c.Prompter.Password("Key password")
	if err != nil {
		return Step{}, err
	}

	keystore := credentials.Keystore{
		Alias:            strings.TrimSpace(alias),
		Type:             keystoreTypeFor(path),
		KeystorePassword: storePassword,
		KeyPassword:      keyPassword,
		Data:             data,
	}
	if err := c.Android.UpdateKeystore(ctx, v.experience, keystore); err != nil {
		return Step{}, err
	}
	c.logger().Debug("keystore uploaded",
		zap.String("experience", v.experience),
		zap.Int("bytes", len(data)))
	c.UI.Success(fmt.Sprintf("Updated upload keystore for %s.", v.experience))
	return Done(), nil
}

// RemoveKeystoreView deletes the stored keystore after confirmation,
// optionally downloading a backup first.
type RemoveKeystoreView struct {
	scope
}

func NewRemoveKeystoreView(experience string) *RemoveKeystoreView {
	return &RemoveKeystoreView{scope{experience: experience}}
}

func (v *RemoveKeystoreView) Kind() Kind { return KindRemoveKeystore }

func (v *RemoveKeystoreView) Open(ctx context.Context, c *Context) (Step, error) {
	creds, err := c.Android.FetchCredentials(ctx, v.experience)
	if err != nil {
		return Step{}, err
	}
	if !creds.HasKeystore() {
		c.UI.Warn(fmt.Sprintf("There is no keystore stored for %s.", v.experience))
		return Done(), nil
	}

	if err := requireInteractive(c, "to remove a keystore"); err != nil {
		return Step{}, err
	}

	c.UI.Warn("Clearing your upload keystore is permanent. Without it you can no longer " +
		"publish updates of this app to the Play Store unless it uses App Signing by Google Play.")
	confirmed, err := c.Prompter.Confirm(
		fmt.Sprintf("Permanently remove the keystore of %s?", v.experience),
		"This action cannot be undone.",
	)
	if err != nil {
		return Step{}, err
	}
	if !confirmed {
		c.UI.Info("Keystore was not removed.")
		return Done(), nil
	}

	backup, err := c.Prompter.Confirm("Download a backup of the keystore first?", "")
	if err != nil {
		return Step{}, err
	}
	if backup {
		if _, err := downloadKeystore(ctx, c, v.experience); err != nil {
			return Step{}, err
		}
	}

	if err := c.Android.RemoveKeystore(ctx, v.experience); err != nil {
		return Step{}, err
	}
	c.UI.Success(fmt.Sprintf("Removed upload keystore for %s.", v.experience))
	return Done(), nil
}

// DownloadKeystoreView writes the stored keystore to disk and prints its secrets.
// It never prompts, so it also runs non-interactively.
type DownloadKeystoreView struct {
	scope
}

func NewDownloadKeystoreView(experience string) *DownloadKeystoreView {
	return &DownloadKeystoreView{scope{experience: experience}}
}

func (v *DownloadKeystoreView) Kind() Kind { return KindDownloadKeystore }

func (v *DownloadKeystoreView) Open(ctx context.Context, c *Context) (Step, error) {
	if _, err := downloadKeystore(ctx, c, v.experience); err != nil {
		return Step{}, err
	}
	return Done(), nil
}

// downloadKeystore returns the written path, or "" when nothing is stored.
func downloadKeystore(ctx context.Context, c *Context, experience string) (string, error) {
	keystore, ok, err := c.Android.DownloadKeystore(ctx, experience)
	if err != nil {
		return "", err
	}
	if !ok {
		c.UI.Warn(fmt.Sprintf("There is no keystore stored for %s.", experience))
		return "", nil
	}

	path := filepath.Join(c.KeystoreDir, keystoreFilename(experience))
	if err := fileops.WriteNew(path, keystore.Data); err != nil {
		if errors.Is(err, fileops.ErrExists) {
			return "", fmt.Errorf("keystore file %s already exists; move it away and retry", path)
		}
		return "", fmt.Errorf("save keystore: %w", err)
	}

	c.UI.Block("🔑", fmt.Sprintf("Keystore of %s", experience), []ui.KeyValue{
		{Key: "Saved to", Value: path},
		{Key: "Size", Value: humanize.Bytes(uint64(len(keystore.Data)))},
		{Key: "Keystore type", Value: valueOr(keystore.Type, credentials.KeystoreTypeJKS)},
		{Key: "Key alias", Value: keystore.Alias},
		{Key: "Keystore password", Value: keystore.KeystorePassword},
		{Key: "Key password", Value: keystore.KeyPassword},
	})
	c.UI.Warn("Keep the keystore and its passwords safe and do not commit them to version control.")
	return path, nil
}

// keystoreFilename maps "@owner/slug" to "@owner__slug.jks".
func keystoreFilename(experience string) string {
	name := strings.ReplaceAll(strings.TrimSpace(experience), "/", "__")
	if name == "" {
		name = "keystore"
	}
	return name + meta.KeystoreExt
}

func keystoreTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".p12", ".pfx":
		return credentials.KeystoreTypePKCS12
	default:
		return credentials.KeystoreTypeJKS
	}
}

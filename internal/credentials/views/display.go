// Where: cli/internal/credentials/views/display.go
// What: Rendering of a fetched credential record.
package views

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/poruru/credctl/cli/internal/domain/credentials"
	"github.com/poruru/credctl/cli/internal/infra/ui"
)

func displayAndroidCredentials(out ui.UserInterface, creds credentials.AppCredentials) {
	rows := []ui.KeyValue{{Key: "Experience", Value: creds.Experience}}

	if creds.HasKeystore() {
		ks := creds.Keystore
		rows = append(rows,
			ui.KeyValue{Key: "Upload keystore alias", Value: ks.Alias},
			ui.KeyValue{Key: "Upload keystore type", Value: valueOr(ks.Type, credentials.KeystoreTypeJKS)},
			ui.KeyValue{Key: "Upload keystore size", Value: humanize.Bytes(uint64(max(ks.Size, 0)))},
		)
		if ks.UpdatedAt != "" {
			rows = append(rows, ui.KeyValue{Key: "Upload keystore updated", Value: ks.UpdatedAt})
		}
	} else {
		rows = append(rows, ui.KeyValue{Key: "Upload keystore", Value: "not configured"})
	}

	if creds.HasPushCredentials() {
		rows = append(rows, ui.KeyValue{Key: "FCM Api Key", Value: credentials.MaskSecret(creds.Push.FcmAPIKey)})
	} else {
		rows = append(rows, ui.KeyValue{Key: "FCM Api Key", Value: "not configured"})
	}

	out.Block("🤖", fmt.Sprintf("Android credentials for %s", creds.Experience), rows)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

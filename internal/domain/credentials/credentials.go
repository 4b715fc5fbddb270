// Where: cli/internal/domain/credentials/credentials.go
// What: Android app credential records.
// Why: Shared read-only shape between the remote store and the credential views.
package credentials

import "strings"

// Keystore types accepted by the remote store.
const (
	KeystoreTypeJKS    = "JKS"
	KeystoreTypePKCS12 = "PKCS12"
)

// KeystoreInfo describes an uploaded keystore without its binary payload.
type KeystoreInfo struct {
	Alias     string
	Type      string
	ObjectKey string
	Size      int64
	UpdatedAt string
}

// Keystore is a full upload keystore including secrets and bytes.
type Keystore struct {
	Alias            string
	Type             string
	KeystorePassword string
	KeyPassword      string
	Data             []byte
}

// PushCredentials holds Firebase Cloud Messaging settings.
type PushCredentials struct {
	FcmAPIKey string
	UpdatedAt string
}

// AppCredentials is the credential record fetched for one experience.
type AppCredentials struct {
	Experience string
	Keystore   *KeystoreInfo
	Push       *PushCredentials
}

// HasKeystore reports whether a keystore has been uploaded.
func (c AppCredentials) HasKeystore() bool {
	return c.Keystore != nil && strings.TrimSpace(c.Keystore.ObjectKey) != ""
}

// HasPushCredentials reports whether an FCM key is stored.
func (c AppCredentials) HasPushCredentials() bool {
	return c.Push != nil && strings.TrimSpace(c.Push.FcmAPIKey) != ""
}

// IsEmpty reports whether neither keystore nor push credentials are present.
func (c AppCredentials) IsEmpty() bool {
	return !c.HasKeystore() && !c.HasPushCredentials()
}

// MaskSecret keeps the last four characters of a secret visible.
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}

// Where: cli/internal/remote/attributes.go
// What: DynamoDB item <-> domain record mapping.
// Why: Keep attribute names and conversions in one place.
package remote

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/poruru/credctl/cli/internal/domain/builds"
	"github.com/poruru/credctl/cli/internal/domain/credentials"
)

// Credentials table attributes.
const (
	attrExperience        = "experience"
	attrKeystoreKey       = "keystore_key"
	attrKeystoreAlias     = "keystore_alias"
	attrKeystoreType      = "keystore_type"
	attrKeystorePassword  = "keystore_password"
	attrKeyPassword       = "key_password"
	attrKeystoreSize      = "keystore_size"
	attrKeystoreUpdatedAt = "keystore_updated_at"
	attrFcmAPIKey         = "fcm_api_key"
	attrFcmUpdatedAt      = "fcm_updated_at"
)

// Builds table attributes.
const (
	attrAccount   = "account"
	attrCreatedAt = "created_at"
	attrBuildID   = "build_id"
	attrPlatform  = "platform"
	attrStatus    = "status"
	attrBuildURL  = "build_url"
	attrLogsURL   = "logs_url"
)

type item = map[string]types.AttributeValue

func stringAttr(value string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: value}
}

func numberAttr(value int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(value, 10)}
}

func readString(it item, name string) string {
	if v, ok := it[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func readInt(it item, name string) int64 {
	v, ok := it[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	parsed, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func credentialsFromItem(experience string, it item) credentials.AppCredentials {
	creds := credentials.AppCredentials{Experience: experience}
	if key := readString(it, attrKeystoreKey); key != "" {
		creds.Keystore = &credentials.KeystoreInfo{
			Alias:     readString(it, attrKeystoreAlias),
			Type:      readString(it, attrKeystoreType),
			ObjectKey: key,
			Size:      readInt(it, attrKeystoreSize),
			UpdatedAt: readString(it, attrKeystoreUpdatedAt),
		}
	}
	if key := readString(it, attrFcmAPIKey); key != "" {
		creds.Push = &credentials.PushCredentials{
			FcmAPIKey: key,
			UpdatedAt: readString(it, attrFcmUpdatedAt),
		}
	}
	return creds
}

func buildFromItem(it item) builds.Info {
	info := builds.Info{
		ID:       readString(it, attrBuildID),
		Platform: readString(it, attrPlatform),
		Status:   readString(it, attrStatus),
	}
	if created, err := time.Parse(time.RFC3339, readString(it, attrCreatedAt)); err == nil {
		info.CreatedAt = created
	}
	buildURL := readString(it, attrBuildURL)
	logsURL := readString(it, attrLogsURL)
	if buildURL != "" || logsURL != "" {
		info.Artifacts = &builds.Artifacts{BuildURL: buildURL, LogsURL: logsURL}
	}
	return info
}

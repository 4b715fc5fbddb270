// Where: cli/internal/remote/store.go
// What: AWS-backed implementation of AndroidAPI and BuildAPI.
// Why: Credential metadata lives in DynamoDB, keystore blobs in S3.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/poruru/credctl/cli/internal/domain/builds"
	"github.com/poruru/credctl/cli/internal/domain/credentials"
	"github.com/poruru/credctl/cli/internal/meta"
)

// Store talks to the credentials table, the builds table and the keystore bucket.
type Store struct {
	DynamoDB         DynamoDBAPI
	S3               S3API
	CredentialsTable string
	BuildsTable      string
	Bucket           string

	Now          func() time.Time
	NewObjectKey func(experience string) string
}

var (
	_ AndroidAPI = (*Store)(nil)
	_ BuildAPI   = (*Store)(nil)
)

// FetchCredentials returns the credential record. A missing row is an empty record.
func (s *Store) FetchCredentials(ctx context.Context, experience string) (credentials.AppCredentials, error) {
	const op = "fetch credentials"
	if err := s.check(experience); err != nil {
		return credentials.AppCredentials{}, err
	}
	out, err := s.DynamoDB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.CredentialsTable),
		Key:            s.credentialsKey(experience),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return credentials.AppCredentials{}, wrap(op, err)
	}
	if out == nil || len(out.Item) == 0 {
		return credentials.AppCredentials{Experience: experience}, nil
	}
	return credentialsFromItem(experience, out.Item), nil
}

// UpdateKeystore uploads the keystore under a fresh object key and then swaps the
// record's pointer in one UpdateItem. The previous blob is removed afterwards.
func (s *Store) UpdateKeystore(ctx context.Context, experience string, keystore credentials.Keystore) error {
	const op = "update keystore"
	if err := s.check(experience); err != nil {
		return err
	}
	if err := validateKeystore(keystore); err != nil {
		return err
	}

	key := s.objectKey(experience)
	if _, err := s.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(keystore.Data),
		ContentType: aws.String("application/octet-stream"),
	}); err != nil {
		return wrap(op, err)
	}

	keystoreType := keystore.Type
	if keystoreType == "" {
		keystoreType = credentials.KeystoreTypeJKS
	}
	out, err := s.DynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CredentialsTable),
		Key:       s.credentialsKey(experience),
		UpdateExpression: aws.String("SET #key = :key, #alias = :alias, #type = :type, " +
			"#spass = :spass, #kpass = :kpass, #size = :size, #updated = :updated"),
		ExpressionAttributeNames: map[string]string{
			"#key":     attrKeystoreKey,
			"#alias":   attrKeystoreAlias,
			"#type":    attrKeystoreType,
			"#spass":   attrKeystorePassword,
			"#kpass":   attrKeyPassword,
			"#size":    attrKeystoreSize,
			"#updated": attrKeystoreUpdatedAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":     stringAttr(key),
			":alias":   stringAttr(keystore.Alias),
			":type":    stringAttr(keystoreType),
			":spass":   stringAttr(keystore.KeystorePassword),
			":kpass":   stringAttr(keystore.KeyPassword),
			":size":    numberAttr(int64(len(keystore.Data))),
			":updated": stringAttr(s.timestamp()),
		},
		ReturnValues: types.ReturnValueUpdatedOld,
	})
	if err != nil {
		// The pointer was never swapped; drop the orphaned upload.
		s.deleteObject(context.WithoutCancel(ctx), key)
		return wrap(op, err)
	}
	if out != nil {
		if previous := readString(out.Attributes, attrKeystoreKey); previous != "" && previous != key {
			s.deleteObject(ctx, previous)
		}
	}
	return nil
}

// RemoveKeystore clears the keystore pointer in one conditional UpdateItem.
// A record without a keystore yields a KindNotFound error.
func (s *Store) RemoveKeystore(ctx context.Context, experience string) error {
	const op = "remove keystore"
	if err := s.check(experience); err != nil {
		return err
	}
	out, err := s.DynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.CredentialsTable),
		Key:                 s.credentialsKey(experience),
		UpdateExpression:    aws.String("REMOVE #key, #alias, #type, #spass, #kpass, #size, #updated"),
		ConditionExpression: aws.String("attribute_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key":     attrKeystoreKey,
			"#alias":   attrKeystoreAlias,
			"#type":    attrKeystoreType,
			"#spass":   attrKeystorePassword,
			"#kpass":   attrKeyPassword,
			"#size":    attrKeystoreSize,
			"#updated": attrKeystoreUpdatedAt,
		},
		ReturnValues: types.ReturnValueUpdatedOld,
	})
	if err != nil {
		return wrap(op, err)
	}
	if out != nil {
		if previous := readString(out.Attributes, attrKeystoreKey); previous != "" {
			s.deleteObject(ctx, previous)
		}
	}
	return nil
}

// UpdateFcmKey stores the FCM server key.
func (s *Store) UpdateFcmKey(ctx context.Context, experience string, key string) error {
	const op = "update fcm key"
	if err := s.check(experience); err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%s: fcm api key is required", op)
	}
	_, err := s.DynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.CredentialsTable),
		Key:              s.credentialsKey(experience),
		UpdateExpression: aws.String("SET #fcm = :fcm, #updated = :updated"),
		ExpressionAttributeNames: map[string]string{
			"#fcm":     attrFcmAPIKey,
			"#updated": attrFcmUpdatedAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fcm":     stringAttr(key),
			":updated": stringAttr(s.timestamp()),
		},
	})
	return wrap(op, err)
}

// DownloadKeystore fetches the keystore secrets and bytes.
func (s *Store) DownloadKeystore(ctx context.Context, experience string) (credentials.Keystore, bool, error) {
	const op = "download keystore"
	if err := s.check(experience); err != nil {
		return credentials.Keystore{}, false, err
	}
	out, err := s.DynamoDB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.CredentialsTable),
		Key:            s.credentialsKey(experience),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return credentials.Keystore{}, false, wrap(op, err)
	}
	if out == nil || readString(out.Item, attrKeystoreKey) == "" {
		return credentials.Keystore{}, false, nil
	}

	object, err := s.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(readString(out.Item, attrKeystoreKey)),
	})
	if err != nil {
		return credentials.Keystore{}, false, wrap(op, err)
	}
	defer object.Body.Close()
	data, err := io.ReadAll(object.Body)
	if err != nil {
		return credentials.Keystore{}, false, wrap(op, err)
	}

	return credentials.Keystore{
		Alias:            readString(out.Item, attrKeystoreAlias),
		Type:             readString(out.Item, attrKeystoreType),
		KeystorePassword: readString(out.Item, attrKeystorePassword),
		KeyPassword:      readString(out.Item, attrKeyPassword),
		Data:             data,
	}, true, nil
}

// ListBuilds queries the newest builds of account.
func (s *Store) ListBuilds(ctx context.Context, account string, limit int) ([]builds.Info, error) {
	const op = "list builds"
	if s == nil || s.DynamoDB == nil {
		return nil, errors.New("remote store is not configured")
	}
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, fmt.Errorf("%s: account is required", op)
	}
	input := &dynamodb.QueryInput{
		TableName:                aws.String(s.BuildsTable),
		KeyConditionExpression:   aws.String("#account = :account"),
		ExpressionAttributeNames: map[string]string{"#account": attrAccount},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account": stringAttr(account),
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}
	out, err := s.DynamoDB.Query(ctx, input)
	if err != nil {
		return nil, wrap(op, err)
	}
	result := make([]builds.Info, 0, len(out.Items))
	for _, it := range out.Items {
		result = append(result, buildFromItem(it))
	}
	return result, nil
}

func (s *Store) check(experience string) error {
	if s == nil || s.DynamoDB == nil || s.S3 == nil {
		return errors.New("remote store is not configured")
	}
	if strings.TrimSpace(experience) == "" {
		return errors.New("experience name is required")
	}
	return nil
}

func (s *Store) credentialsKey(experience string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrExperience: stringAttr(experience)}
}

func (s *Store) objectKey(experience string) string {
	if s.NewObjectKey != nil {
		return s.NewObjectKey(experience)
	}
	return path.Join(meta.KeystoreObjectRoot, strings.TrimPrefix(experience, "@"), uuid.NewString()+meta.KeystoreExt)
}

func (s *Store) timestamp() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Format(time.RFC3339)
}

// deleteObject removes a blob no record points at anymore. Failures leave an
// unreferenced object behind, which never changes what FetchCredentials reports.
func (s *Store) deleteObject(ctx context.Context, key string) {
	_, _ = s.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
}

func validateKeystore(keystore credentials.Keystore) error {
	switch {
	case len(keystore.Data) == 0:
		return errors.New("keystore file is empty")
	case strings.TrimSpace(keystore.Alias) == "":
		return errors.New("key alias is required")
	case keystore.KeystorePassword == "":
		return errors.New("keystore password is required")
	case keystore.KeyPassword == "":
		return errors.New("key password is required")
	}
	switch keystore.Type {
	case "", credentials.KeystoreTypeJKS, credentials.KeystoreTypePKCS12:
		return nil
	default:
		return fmt.Errorf("unsupported keystore type: %s", keystore.Type)
	}
}

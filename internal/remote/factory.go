// Where: cli/internal/remote/factory.go
// What: AWS client factory for the credential store.
// Why: Encapsulate SDK configuration (region, endpoint, static keys).
package remote

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/credctl/cli/internal/constants"
	"github.com/poruru/credctl/cli/internal/infra/config"
)

// ClientFactory builds the SDK clients used by Store.
type ClientFactory interface {
	DynamoDB(ctx context.Context, cfg config.GlobalConfig) (DynamoDBAPI, error)
	S3(ctx context.Context, cfg config.GlobalConfig) (S3API, error)
}

// AWSClientFactory creates real SDK clients.
type AWSClientFactory struct{}

var loadDefaultConfig = awsconfig.LoadDefaultConfig

func (AWSClientFactory) DynamoDB(ctx context.Context, cfg config.GlobalConfig) (DynamoDBAPI, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(options *dynamodb.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (AWSClientFactory) S3(ctx context.Context, cfg config.GlobalConfig) (S3API, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	}), nil
}

// NewStore wires a Store from cfg using factory.
func NewStore(ctx context.Context, factory ClientFactory, cfg config.GlobalConfig) (*Store, error) {
	if factory == nil {
		factory = AWSClientFactory{}
	}
	dynamo, err := factory.DynamoDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb client: %w", err)
	}
	blobs, err := factory.S3(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	return &Store{
		DynamoDB:         dynamo,
		S3:               blobs,
		CredentialsTable: cfg.CredentialsTable,
		BuildsTable:      cfg.BuildsTable,
		Bucket:           cfg.KeystoreBucket,
	}, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if envRegion := os.Getenv(constants.EnvAWSRegion); region == "" && envRegion != "" {
		region = envRegion
	}
	if region == "" {
		region = config.DefaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	accessKey := os.Getenv(constants.EnvAccessKey)
	secretKey := os.Getenv(constants.EnvSecretKey)
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := loadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

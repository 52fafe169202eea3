package database

import (
	"context"

	"travel_backoffice/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
//
// DYNAMODB_ENDPOINT (e.g. http://dynamodb:8000) points the client at a local
// emulator; leave it empty in AWS.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.DynamoDB.Endpoint
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewAWSConfig builds the shared aws.Config used by the DynamoDB and S3 clients.
//
// Static keys are used when both are set (local emulators accept any value).
// Otherwise the SDK default chain resolves credentials, so IAM roles work.
func NewAWSConfig(ctx context.Context, cfg config.AWSConfig, extra ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if creds, ok := staticCredentials(cfg); ok {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}
	loadOpts = append(loadOpts, extra...)

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func staticCredentials(cfg config.AWSConfig) (aws.CredentialsProvider, bool) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, false
	}
	return credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""), true
}

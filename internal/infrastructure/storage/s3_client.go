package storage

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"strings"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/infrastructure/database"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// s3API is the subset of the S3 client used here.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ObjectStore uploads public objects to a single bucket.
//
// Objects are addressed with the virtual-hosted URL
// https://<bucket>.s3.<region>.amazonaws.com/<key>, which is also what
// GenerateURL returns before the object exists.
type S3ObjectStore struct {
	client s3API
	bucket string
	region string
	logger *zap.Logger
}

var _ interfaces.IObjectStore = (*S3ObjectStore)(nil)

// ConnectS3 builds the S3 client with the configured connect timeout, overall
// operation timeout and SDK retry budget.
func ConnectS3(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	httpClient := awshttp.NewBuildableClient().
		WithTimeout(cfg.S3.OperationTimeout).
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = cfg.S3.ConnectTimeout
		})

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS,
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithRetryMaxAttempts(cfg.S3.MaxAttempts),
	)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.S3.Endpoint
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3ObjectStore(client s3API, bucket, region string, logger *zap.Logger) *S3ObjectStore {
	return &S3ObjectStore{client: client, bucket: bucket, region: region, logger: logger}
}

// Upload blocks until S3 acknowledges the object and returns its public URL.
func (s *S3ObjectStore) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		s.logger.Error("[storage][s3] upload failed",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := s.GenerateURL(key)
	s.logger.Info("[storage][s3] object uploaded",
		zap.String("key", key),
		zap.Int("size", len(body)),
		zap.String("url", url),
	)
	return url, nil
}

func (s *S3ObjectStore) GenerateURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, strings.TrimPrefix(key, "/"))
}

// Package config loads the service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"

	// DeletePolicyOrphan keeps bookings of a deleted package untouched.
	DeletePolicyOrphan = "orphan"
	// DeletePolicyReject refuses to delete a package that still has bookings.
	DeletePolicyReject = "reject"
)

// Config holds every option recognized by the api.
type Config struct {
	Port     string `env:"PORT"      envDefault:"3000"`
	AppEnv   string `env:"APP_ENV"   envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`

	AWS      AWSConfig
	DynamoDB DynamoDBConfig
	S3       S3Config
	Upload   UploadConfig
	Media    MediaConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Cache    CacheConfig

	PackageDeletePolicy string `env:"PACKAGE_DELETE_POLICY" envDefault:"orphan"`
	MaxUploadSizeMB     int64  `env:"MAX_UPLOAD_SIZE_MB"    envDefault:"20"`
}

type AWSConfig struct {
	Region          string `env:"AWS_REGION"            envDefault:"sa-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

type DynamoDBConfig struct {
	Endpoint      string `env:"DYNAMODB_ENDPOINT"`
	PackagesTable string `env:"PACKAGES_TABLE" envDefault:"travel_packages"`
	BookingsTable string `env:"BOOKINGS_TABLE" envDefault:"bookings"`
	UsersTable    string `env:"USERS_TABLE"    envDefault:"users"`
}

type S3Config struct {
	Bucket           string        `env:"AWS_BUCKET_NAME"      envDefault:"vandre-aws"`
	Endpoint         string        `env:"S3_ENDPOINT"`
	ConnectTimeout   time.Duration `env:"S3_CONNECT_TIMEOUT"   envDefault:"5s"`
	OperationTimeout time.Duration `env:"S3_OPERATION_TIMEOUT" envDefault:"300s"`
	MaxAttempts      int           `env:"S3_MAX_ATTEMPTS"      envDefault:"3"`
}

type UploadConfig struct {
	RetryInterval time.Duration `env:"UPLOAD_RETRY_INTERVAL" envDefault:"5s"`
	// MaxAttempts bounds the retries of a single task; 0 retries forever.
	MaxAttempts int `env:"UPLOAD_MAX_ATTEMPTS" envDefault:"20"`
}

type MediaConfig struct {
	ImageMaxWidth int `env:"MEDIA_IMAGE_MAX_WIDTH" envDefault:"1200"`
	ImageQuality  int `env:"MEDIA_IMAGE_QUALITY"   envDefault:"80"`
}

type SMTPConfig struct {
	Host   string `env:"SMTP_HOST"`
	Port   int    `env:"SMTP_PORT"   envDefault:"465"`
	Secure bool   `env:"SMTP_SECURE" envDefault:"true"`
	User   string `env:"SMTP_USER"`
	Pass   string `env:"SMTP_PASS"`
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET"     envDefault:"CHANGE_ME"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
}

type CacheConfig struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.PackageDeletePolicy = strings.ToLower(strings.TrimSpace(cfg.PackageDeletePolicy))
	if cfg.PackageDeletePolicy != DeletePolicyReject {
		cfg.PackageDeletePolicy = DeletePolicyOrphan
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

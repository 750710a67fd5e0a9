package storage

import (
	"context"
	"io"
)

// Backend is where finished assets end up. Keys are slash-separated paths
// relative to the backend root or bucket.
type Backend interface {
	Store(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	URL(ctx context.Context, key string) (string, error)
}

type BackendType string

const (
	BackendTypeLocal BackendType = "local"
	BackendTypeS3    BackendType = "s3"
)

type Config struct {
	Type            BackendType `mapstructure:"type"`
	LocalPath       string      `mapstructure:"local_path"`
	ExternalURL     string      `mapstructure:"external_url"`
	S3Endpoint      string      `mapstructure:"s3_endpoint"`
	S3Bucket        string      `mapstructure:"s3_bucket"`
	S3AccessKey     string      `mapstructure:"s3_access_key"`
	S3SecretKey     string      `mapstructure:"s3_secret_key"`
	S3Region        string      `mapstructure:"s3_region"`
	S3UseSSL        bool        `mapstructure:"s3_use_ssl"`
	CDNDistribution string      `mapstructure:"cdn_distribution"`
}

func NewBackend(config *Config) (Backend, error) {
	switch config.Type {
	case BackendTypeS3:
		return NewS3Storage(config)
	default:
		return NewLocalStorage(config)
	}
}

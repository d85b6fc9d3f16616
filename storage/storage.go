package storage

import (
	"io"

	"photoserver/config"
)

// Provider is the durable blob store behind the ingestion pipeline. Put is
// expected to be atomic per key; retry policy is the implementation's
// concern, not the caller's.
type Provider interface {
	// Put stores the content under key with the given metadata.
	Put(key string, reader io.Reader, contentType string, size int64) error
	// URL returns a retrievable URL for a stored key.
	URL(key string) (string, error)
	// Open returns the stored content for reading.
	Open(key string) (io.ReadCloser, error)
	// Delete removes the stored content.
	Delete(key string) error
	// Presigned reports whether URL responses are directly fetchable by
	// clients (as opposed to being served by this process).
	Presigned() bool
}

// NewFromConfig selects the S3 provider when a bucket is configured and
// falls back to local disk storage otherwise.
func NewFromConfig() (Provider, error) {
	if config.S3_BUCKET != "" {
		return NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_ENDPOINT, config.S3_PREFIX)
	}
	return NewDiskStorage(config.DISK_STORAGE_DIR)
}

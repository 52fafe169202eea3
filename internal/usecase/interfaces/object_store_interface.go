package interfaces

import (
	"context"
	"travel_backoffice/internal/domain/entities"
)

// IObjectStore uploads blobs to the public bucket.
//
// GenerateURL is pure: it only applies the bucket naming convention and does not
// check that the object exists.
type IObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) (string, error)
	GenerateURL(key string) string
}

// IUploadQueue accepts uploads without blocking the caller and retries them in
// the background until they succeed (or give up after the configured attempts).
//
// The returned token only identifies the task in logs and operator listings.
type IUploadQueue interface {
	Queue(body []byte, contentType string, key string) string
	GenerateURL(key string) string
	Pending() []entities.UploadTask
	Failed() []entities.UploadTask
}

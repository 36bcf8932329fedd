package port

import (
	"context"
	"io"
	"time"
)

// UploadInput describes an object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput is the result of a successful upload.
type UploadOutput struct {
	Key  string
	ETag string
}

// ObjectStorage abstracts the blob store holding menu item images.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

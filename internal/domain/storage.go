package domain

import (
	"context"
	"io"
)

type BlobPutResult struct {
	URL        string
	StorageKey string
	Size       int64
}

// BlobStorage holds uploaded images (S3/MinIO). Put returns the public URL
// clients embed in posts; the API never proxies image bytes back.
type BlobStorage interface {
	Put(ctx context.Context, r io.Reader, name, mime string) (BlobPutResult, error)
	Delete(ctx context.Context, storageKey string) error
	Ping(ctx context.Context) error
}

package s3

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"blogapi/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
	// PublicURL overrides the base used when building object URLs
	// (e.g. a CDN in front of the bucket). Empty = endpoint itself.
	PublicURL string
}

type Storage struct {
	cl        *minio.Client
	bucket    string
	publicURL string
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}

	base := cfg.PublicURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, publicURL: strings.TrimRight(base, "/")}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

// Put uploads the stream under "uploads/<unix>-<rand>-<name>" and returns the
// public URL of the object.
func (s *Storage) Put(ctx context.Context, r io.Reader, name, mime string) (domain.BlobPutResult, error) {
	key := fmt.Sprintf("uploads/%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), sanitize(name))

	info, err := s.cl.PutObject(ctx, s.bucket, key, r, -1, minio.PutObjectOptions{
		ContentType: mime,
	})
	if err != nil {
		return domain.BlobPutResult{}, err
	}

	return domain.BlobPutResult{
		URL:        s.publicURL + "/" + key,
		StorageKey: key,
		Size:       info.Size,
	}, nil
}

func (s *Storage) Delete(ctx context.Context, storageKey string) error {
	return s.cl.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{})
}

// Ping verifies the bucket is reachable (used by the readiness probe).
func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func sanitize(name string) string {
	u := url.PathEscape(name)
	return strings.ReplaceAll(u, "%2F", "_")
}

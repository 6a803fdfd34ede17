package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSSource reads <prefix>/<name>.json from a Cloud Storage bucket.
type GCSSource struct {
	client *storage.Client
	bucket string
	prefix string
	open   func(ctx context.Context, object string) (io.ReadCloser, error)
}

// NewGCSSource opens a storage client for a gs://bucket/prefix URI. When endpoint is
// set the client talks to it without credentials, for use with a storage emulator.
func NewGCSSource(ctx context.Context, uri, endpoint string) (*GCSSource, error) {
	bucket, prefix, err := ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	src := &GCSSource{client: client, bucket: bucket, prefix: prefix}
	src.open = func(ctx context.Context, object string) (io.ReadCloser, error) {
		return client.Bucket(bucket).Object(object).NewReader(ctx)
	}
	return src, nil
}

// Read implements Source.
func (s *GCSSource) Read(ctx context.Context, name Name) ([]byte, error) {
	object := path.Join(s.prefix, fileName(name))

	rc, err := s.open(ctx, object)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("gs://%s/%s: %w", s.bucket, object, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading object %s/%s: %w", s.bucket, object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading bytes of %s/%s: %w", s.bucket, object, err)
	}
	return data, nil
}

// Close releases the storage client.
func (s *GCSSource) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// ParseGCSURI splits gs://bucket/prefix. The prefix may be empty.
func ParseGCSURI(uri string) (bucket, prefix string, err error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}

	trimmed := strings.TrimPrefix(uri, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no bucket): %s", uri)
	}
	if len(parts) == 2 {
		prefix = strings.Trim(parts[1], "/")
	}
	return parts[0], prefix, nil
}

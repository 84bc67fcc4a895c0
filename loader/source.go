package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/katalvlaran/knapsack/model"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pierrec/lz4/v4"
)

const s3Scheme = "s3://"

// NewS3Client builds a minio-go client for cfg.
func NewS3Client(cfg S3Config) (*minio.Client, error) {
	creds := credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	if cfg.AccessKey == "" {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.EnvMinio{},
		})
	}

	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
}

// Open returns a reader over the decompressed content at location.
//
// Location is a local path or s3://bucket/key. A ".zst" or ".lz4" suffix
// selects the matching decompressor. The caller must Close the result.
//
// Errors: ErrNotFound, ErrBadLocation, ErrNoObjectClient, and I/O errors.
func Open(ctx context.Context, location string, opts ...Option) (io.ReadCloser, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		raw io.ReadCloser
		err error
	)
	if strings.HasPrefix(location, s3Scheme) {
		raw, err = openObject(ctx, cfg.Client, location)
	} else {
		raw, err = openFile(location)
	}
	if err != nil {
		return nil, err
	}

	return decompress(location, raw)
}

// LoadFile opens location, parses it and normalizes the instance.
func LoadFile(ctx context.Context, location string, opts ...Option) (model.Instance, model.Scale, error) {
	rc, err := Open(ctx, location, opts...)
	if err != nil {
		return model.Instance{}, model.Scale{}, err
	}
	defer rc.Close()

	inst, scale, err := Load(rc)
	if err != nil {
		return model.Instance{}, model.Scale{}, fmt.Errorf("%s: %w", location, err)
	}

	return inst, scale, nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func openObject(ctx context.Context, client *minio.Client, location string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: %s", ErrBadLocation, location)
	}
	if client == nil {
		return nil, ErrNoObjectClient
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing key before parsing starts.
	if _, err = obj.Stat(); err != nil {
		_ = obj.Close()
		code := minio.ToErrorResponse(err).Code
		if code == "NoSuchKey" || code == "NoSuchBucket" || code == "NotFound" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, err
	}

	return obj, nil
}

// decompress wraps raw according to the location suffix.
func decompress(location string, raw io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(location, ".zst"):
		dec, err := zstd.NewReader(raw)
		if err != nil {
			_ = raw.Close()
			return nil, fmt.Errorf("loader: zstd: %w", err)
		}
		return &stacked{Reader: dec, close: func() error { dec.Close(); return raw.Close() }}, nil
	case strings.HasSuffix(location, ".lz4"):
		return &stacked{Reader: lz4.NewReader(raw), close: raw.Close}, nil
	default:
		return raw, nil
	}
}

// stacked closes a decoder together with the stream under it.
type stacked struct {
	io.Reader
	close func() error
}

func (s *stacked) Close() error { return s.close() }

package loader

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// Sentinel errors returned by the loader.
var (
	// ErrEmptyInput indicates input without a capacity record.
	ErrEmptyInput = errors.New("loader: no capacity line")

	// ErrMalformed indicates a record that is not a number or a weight,benefit pair.
	ErrMalformed = errors.New("loader: malformed record")

	// ErrNoObjectClient indicates an s3:// location without a configured client.
	ErrNoObjectClient = errors.New("loader: s3 location requires an object storage client")

	// ErrBadLocation indicates an s3:// location without bucket or key.
	ErrBadLocation = errors.New("loader: invalid location")

	// ErrNotFound indicates a missing file or object.
	ErrNotFound = errors.New("loader: instance not found")
)

// Options configures Open and LoadFile.
//
//   - Client — minio-go client used for s3:// locations.
type Options struct {
	Client *minio.Client
}

// Option represents a functional option for configuring the loader.
type Option func(*Options)

// WithClient sets the object storage client used for s3:// locations.
func WithClient(c *minio.Client) Option {
	return func(o *Options) {
		o.Client = c
	}
}

// S3Config describes an S3-compatible endpoint.
//
//   - Endpoint  — host[:port], e.g. "s3.amazonaws.com" or "localhost:9000".
//   - AccessKey / SecretKey — static credentials; when AccessKey is empty the
//     AWS_* and MINIO_* environment variables are consulted.
//   - Secure    — use TLS.
//   - Region    — optional bucket region.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
	Region    string
}

package storage

import "fmt"

// Config holds S3-compatible storage settings.
type Config struct {
	// Bucket is the bucket name (required).
	Bucket string

	// AccessKey and SecretKey are static credentials (required).
	AccessKey string
	SecretKey string

	// Endpoint is a custom endpoint URL for S3-compatible services.
	Endpoint string

	// Region defaults to us-east-1.
	Region string

	// PathStyle addresses the bucket in the path instead of the host (MinIO).
	PathStyle bool

	// ACL is applied to every upload. Empty leaves the bucket default.
	ACL ACL
}

// Object describes one stored file.
type Object struct {
	Key          string
	Size         int64
	ContentType  string
	CacheControl string
	ETag         string
}

// ACL is a canned access control setting.
type ACL string

const (
	ACLPrivate    ACL = "private"
	ACLPublicRead ACL = "public-read"
)

const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c *Config) validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	case c.AccessKey == "", c.SecretKey == "":
		return fmt.Errorf("%w: access key and secret key are required", ErrInvalidConfig)
	case c.ACL != "" && c.ACL != ACLPrivate && c.ACL != ACLPublicRead:
		return fmt.Errorf("%w: unknown acl %q", ErrInvalidConfig, c.ACL)
	}
	return nil
}

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 stores objects in an S3-compatible bucket.
type S3 struct {
	client *s3.Client
	cfg    Config
}

// New creates an S3 client with static credentials.
func New(cfg Config) (*S3, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			// Several S3-compatible services reject the default flexible checksums.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3{client: s3.New(s3.Options{}, opts...), cfg: cfg}, nil
}

// Bucket returns the configured bucket name.
func (s *S3) Bucket() string { return s.cfg.Bucket }

// Put uploads body under obj.Key. obj.Size is sent as the content length.
// The body must be seekable so the payload can be signed over plain HTTP.
func (s *S3) Put(ctx context.Context, obj Object, body io.ReadSeeker) error {
	if err := checkKey(obj.Key); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(obj.Key),
		Body:          body,
		ContentLength: aws.Int64(obj.Size),
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if obj.CacheControl != "" {
		input.CacheControl = aws.String(obj.CacheControl)
	}
	switch s.cfg.ACL {
	case ACLPublicRead:
		input.ACL = types.ObjectCannedACLPublicRead
	case ACLPrivate:
		input.ACL = types.ObjectCannedACLPrivate
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return wrapS3Error(err, ErrUploadFailed)
	}
	return nil
}

// List returns every object whose key starts with prefix.
func (s *S3) List(ctx context.Context, prefix string) ([]Object, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.cfg.Bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var out []Object
	pages := s3.NewListObjectsV2Paginator(s.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, item := range page.Contents {
			out = append(out, Object{
				Key:  aws.ToString(item.Key),
				Size: aws.ToInt64(item.Size),
				ETag: strings.Trim(aws.ToString(item.ETag), `"`),
			})
		}
	}
	return out, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *S3) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapS3Error(err, ErrDeleteFailed)
	}
	return nil
}

// checkKey rejects keys that S3 would store but a browser could never
// request: empty, absolute or containing dot segments.
func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "." || seg == ".." || seg == "" {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

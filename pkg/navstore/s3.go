package navstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store persists snapshots as S3 objects under a key prefix. Useful
// when navigation state should follow a user across devices or survive
// host replacement.
//
// The caller supplies a configured client:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := navstore.NewS3Store(s3.NewFromConfig(cfg), "my-bucket",
//	    navstore.WithPrefix("navstate/"))
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3Option configures an S3Store.
type S3Option func(*S3Store)

// WithPrefix sets the object key prefix (default "wayfarer/").
func WithPrefix(prefix string) S3Option {
	return func(s *S3Store) {
		s.prefix = prefix
	}
}

// NewS3Store creates an S3-backed store writing to bucket.
func NewS3Store(client *s3.Client, bucket string, opts ...S3Option) *S3Store {
	store := &S3Store{
		client: client,
		bucket: bucket,
		prefix: "wayfarer/",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save uploads data under the key's object.
func (s *S3Store) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("navstore: s3 save %s: %w", key, err)
	}
	return nil
}

// Load downloads the key's object, returning (nil, nil) when it does not
// exist.
func (s *S3Store) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("navstore: s3 load %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("navstore: s3 load %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the key's object. Missing objects are not an error; S3
// delete is idempotent.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return fmt.Errorf("navstore: s3 delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the underlying client is owned by the caller.
func (s *S3Store) Close() error { return nil }

func (s *S3Store) objectKey(key string) string {
	return s.prefix + key + ".json"
}

package s3

import (
	"bytes"
	"context"
	"errors"
	"io"

	"vacstats/internal/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BlobStore implements ports.BlobStore on an S3-compatible bucket.
type BlobStore struct {
	bucket string
	cli    *awss3.Client
}

func NewBlobStore(bucket string, cli *awss3.Client) *BlobStore {
	return &BlobStore{bucket: bucket, cli: cli}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.cli.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var nsk *s3Types.NoSuchKey
		var nf *s3Types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil, types.Err(types.ErrNotFound, nil, "s3://%s/%s", s.bucket, key)
		}
		return nil, err
	}
	defer func() {
		_ = out.Body.Close()
	}()
	return io.ReadAll(out.Body)
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	in := &awss3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	_, err := s.cli.PutObject(ctx, in)
	return err
}

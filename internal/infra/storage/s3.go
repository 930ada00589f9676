package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStore writes restaurant images to an S3-compatible bucket.
type S3ImageStore struct {
	client objectPutter
	bucket string
	prefix string
	newID  func() string
}

func NewS3Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load storage config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3ImageStore(client *s3.Client, cfg config.StorageConfig) *S3ImageStore {
	return newS3ImageStore(client, cfg.Bucket, cfg.KeyPrefix)
}

func newS3ImageStore(client objectPutter, bucket, prefix string) *S3ImageStore {
	return &S3ImageStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
		newID:  func() string { return uuid.NewString() },
	}
}

// Save stores body under a fresh uuid keeping the original extension, and
// returns that name for image_name.
func (s *S3ImageStore) Save(ctx context.Context, originalFilename, contentType string, body io.Reader) (string, error) {
	name := s.newID() + strings.ToLower(filepath.Ext(originalFilename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + name),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.Wrapf(err, "failed to upload image %s", name)
	}
	return name, nil
}

package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "revdev-backend/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores public images in an S3-compatible bucket (AWS or MinIO).
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Store(cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	publicBaseURL := cfg.S3PublicBaseURL
	if publicBaseURL == "" {
		if cfg.S3BaseEndpoint != "" {
			publicBaseURL = strings.TrimRight(cfg.S3BaseEndpoint, "/") + "/" + cfg.S3Bucket
		} else {
			publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put uploads the object and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", err
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// KeyFromURL reports the object key behind a public URL, and whether the
// URL belongs to this store at all.
func (s *S3Store) KeyFromURL(url string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

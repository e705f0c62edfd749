package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // Optional: for DO Spaces, R2, MinIO, etc.
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string // Optional: CDN or custom domain in front of the bucket
}

// S3Uploader stores listing images in S3-compatible object storage
type S3Uploader struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Uploader creates a new S3 uploader
func NewS3Uploader(ctx context.Context, cfg S3Config) (*S3Uploader, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Uploader{client: client, cfg: cfg}, nil
}

// Upload uploads data under the given key and returns its public URL
func (u *S3Uploader) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return u.PublicURL(key), nil
}

// Remove deletes the object behind a previously issued public URL. Unknown
// URLs are ignored so stale references never block listing cleanup.
func (u *S3Uploader) Remove(ctx context.Context, publicURL string) error {
	key, ok := u.KeyFromURL(publicURL)
	if !ok {
		return nil
	}
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// PublicURL returns the public URL for an S3 key
func (u *S3Uploader) PublicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	if u.cfg.Endpoint != "" {
		// Path-style: https://{endpoint}/{bucket}/{key}
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.cfg.Endpoint, "/"), u.cfg.Bucket, key)
	}
	// AWS S3: https://{bucket}.s3.{region}.amazonaws.com/{key}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

// KeyFromURL recovers the object key from a URL this uploader issued.
func (u *S3Uploader) KeyFromURL(publicURL string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", u.cfg.Bucket, u.cfg.Region),
	}
	if u.cfg.PublicBaseURL != "" {
		prefixes = append(prefixes, strings.TrimSuffix(u.cfg.PublicBaseURL, "/")+"/")
	}
	if u.cfg.Endpoint != "" {
		prefixes = append(prefixes, fmt.Sprintf("%s/%s/", strings.TrimSuffix(u.cfg.Endpoint, "/"), u.cfg.Bucket))
	}
	for _, p := range prefixes {
		if strings.HasPrefix(publicURL, p) {
			return strings.TrimPrefix(publicURL, p), true
		}
	}
	return "", false
}

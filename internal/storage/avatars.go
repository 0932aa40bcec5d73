package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarStorage handles profile picture uploads to S3-compatible object
// storage.
type AvatarStorage struct {
	client    *s3.Client
	bucket    string
	urlPrefix string
}

func NewAvatarStorage(client *s3.Client, bucket, urlPrefix string) *AvatarStorage {
	return &AvatarStorage{
		client:    client,
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Upload stores an avatar under the given key and returns its public URL.
func (s *AvatarStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

func (s *AvatarStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete avatar %s: %w", key, err)
	}

	return nil
}

func (s *AvatarStorage) PublicURL(key string) string {
	if s.urlPrefix != "" {
		return fmt.Sprintf("%s/%s", s.urlPrefix, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

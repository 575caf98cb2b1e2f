package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// MinioStorage реализует ObjectStorage поверх S3-совместимого хранилища
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStorage создает клиент хранилища и проверяет наличие бакета
func NewMinioStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		log.Printf("[MinioStorage] Создан бакет %s", bucket)
	}

	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload загружает объект и возвращает его публичный URL
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to upload object %s: %v", apperrors.ErrExternalService, key, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// Delete удаляет объект из хранилища
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to delete object %s: %v", apperrors.ErrExternalService, key, err)
	}
	return nil
}

package storage

import (
	"context"
	"io"
)

// ObjectStorage определяет методы для работы с файловым хранилищем
type ObjectStorage interface {
	// Upload загружает объект и возвращает его публичный URL
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

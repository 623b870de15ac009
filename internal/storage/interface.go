package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface is the backend for equipment image files. The mock
// implementation keeps files on the local filesystem; a cloud backend
// (S3, Azure Blob) would satisfy the same surface with real presigned URLs.
type StorageInterface interface {
	// GeneratePresignedUploadURL returns a URL the client PUTs the image to.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a short-lived URL serving the image.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists reports whether the key holds a file and its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes the file behind the key.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the mock upload/download HTTP handlers.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}

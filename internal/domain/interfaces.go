package domain

import (
	"context"
	"io"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetFolderPath() string
	GetLogLevel() string
}

// DocumentStore exposes the liveness and statistics surface of the document
// database, consumed by the status endpoints.
type DocumentStore interface {
	IsAlive(ctx context.Context) bool
	CountUsers(ctx context.Context) (int64, error)
	CountFiles(ctx context.Context) (int64, error)
}

// BlobStorage persists raw file content on local disk. Save allocates a
// collision-free path for new content; ThumbnailPath derives the deterministic
// location of a resized copy from the original path.
type BlobStorage interface {
	Save(data []byte) (string, error)
	Open(path string) (io.ReadSeekCloser, error)
	ThumbnailPath(path string, width int) string
	SaveThumbnail(path string, width int, data []byte) error
}

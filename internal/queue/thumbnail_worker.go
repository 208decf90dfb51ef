package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"files-manager/internal/domain"

	"github.com/disintegration/imaging"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThumbnailWorker consumes thumbnail jobs. It re-reads the file record by id
// and owner before doing any work, so stale or spoofed jobs die here instead
// of producing thumbnails for the wrong file. Re-running the same job
// overwrites the same deterministic paths.
type ThumbnailWorker struct {
	files   domain.FileRepository
	storage domain.BlobStorage
	logger  domain.Logger
}

// NewThumbnailWorker creates the thumbnail job handler.
func NewThumbnailWorker(files domain.FileRepository, storage domain.BlobStorage, logger domain.Logger) *ThumbnailWorker {
	return &ThumbnailWorker{files: files, storage: storage, logger: logger}
}

// ProcessTask derives a resized copy of the image for every target width.
// The job completes only after all widths are written; on a crash midway the
// unacknowledged job is redelivered and the surviving copies are overwritten.
func (w *ThumbnailWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var job domain.ThumbnailJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		return fmt.Errorf("malformed thumbnail payload: %v: %w", err, asynq.SkipRetry)
	}
	if job.FileID == "" {
		return fmt.Errorf("missing fileId: %w", asynq.SkipRetry)
	}
	if job.UserID == "" {
		return fmt.Errorf("missing userId: %w", asynq.SkipRetry)
	}

	fileID, err := primitive.ObjectIDFromHex(job.FileID)
	if err != nil {
		return fmt.Errorf("invalid fileId %q: %w", job.FileID, asynq.SkipRetry)
	}
	userID, err := primitive.ObjectIDFromHex(job.UserID)
	if err != nil {
		return fmt.Errorf("invalid userId %q: %w", job.UserID, asynq.SkipRetry)
	}

	file, err := w.files.GetByIDAndOwner(ctx, fileID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("file %s not found for user %s: %w", job.FileID, job.UserID, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to load file record: %w", err)
	}

	src, err := w.decodeOriginal(file)
	if err != nil {
		return err
	}
	format := formatForName(file.Name)

	for _, width := range domain.ThumbnailWidths {
		thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, format); err != nil {
			return fmt.Errorf("failed to encode %dpx thumbnail: %w", width, err)
		}
		if err := w.storage.SaveThumbnail(file.LocalPath, width, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write %dpx thumbnail: %w", width, err)
		}
		w.logger.Debug("Thumbnail written", "fileId", job.FileID, "width", width)
	}

	w.logger.Info("Thumbnails generated", "fileId", job.FileID)
	return nil
}

// decodeOriginal opens and decodes the stored image. A missing blob or an
// undecodable image will not heal on retry, so both are terminal.
func (w *ThumbnailWorker) decodeOriginal(file *domain.FileNode) (image.Image, error) {
	r, err := w.storage.Open(file.LocalPath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("blob missing for file %s: %w", file.ID.Hex(), asynq.SkipRetry)
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	defer r.Close()

	src, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v: %w", err, asynq.SkipRetry)
	}
	return src, nil
}

// formatForName picks the thumbnail encoding from the file name extension,
// falling back to PNG for unknown extensions.
func formatForName(name string) imaging.Format {
	format, err := imaging.FormatFromExtension(filepath.Ext(name))
	if err != nil {
		return imaging.PNG
	}
	return format
}

package service

import (
	"context"
	"encoding/base64"
	"errors"

	"files-manager/internal/domain"
	apperrors "files-manager/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fileService struct {
	files   domain.FileRepository
	storage domain.BlobStorage
	queue   domain.JobQueue
	logger  domain.Logger
}

// NewFileService creates the file registry service.
func NewFileService(files domain.FileRepository, storage domain.BlobStorage, queue domain.JobQueue, logger domain.Logger) domain.FileService {
	return &fileService{files: files, storage: storage, queue: queue, logger: logger}
}

// Create validates the input, persists content (non-folders) and the file
// record, and for images enqueues a thumbnail job. Ordering is deliberate:
// content before record, record before job, so a job never references a
// record that is not durably written.
func (s *fileService) Create(ctx context.Context, owner *domain.User, in domain.CreateFileInput) (*domain.FileNode, error) {
	if in.Name == "" {
		return nil, apperrors.NewValidationError("Missing name")
	}
	if !domain.IsValidFileType(in.Type) {
		return nil, apperrors.NewValidationError("Missing type")
	}
	fileType := domain.FileType(in.Type)

	if fileType != domain.FileTypeFolder && in.Data == "" {
		return nil, apperrors.NewValidationError("Missing data")
	}

	parentID := in.ParentID
	if parentID == "" {
		parentID = domain.RootParentID
	}
	if parentID != domain.RootParentID {
		if err := s.checkParent(ctx, owner, parentID); err != nil {
			return nil, err
		}
	}

	node := &domain.FileNode{
		UserID:   owner.ID,
		Name:     in.Name,
		Type:     fileType,
		ParentID: parentID,
		IsPublic: in.IsPublic,
	}

	if fileType != domain.FileTypeFolder {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil || len(data) == 0 {
			return nil, apperrors.NewValidationError("Missing data")
		}
		path, err := s.storage.Save(data)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to store file content", err)
		}
		node.LocalPath = path
	}

	created, err := s.files.Create(ctx, node)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create file record", err)
	}

	if fileType == domain.FileTypeImage {
		job := domain.ThumbnailJob{FileID: created.ID.Hex(), UserID: owner.ID.Hex()}
		if err := s.queue.EnqueueThumbnail(ctx, job); err != nil {
			// The upload itself succeeded; readers fall back to the original
			// content until thumbnails exist.
			s.logger.Warn("Failed to enqueue thumbnail job", "fileId", job.FileID, "error", err)
		}
	}

	s.logger.Info("File created", "fileId", created.ID.Hex(), "type", in.Type)
	return created, nil
}

// checkParent validates that parentID resolves to a folder owned by owner.
// A parent owned by someone else reports the same error as a missing one.
func (s *fileService) checkParent(ctx context.Context, owner *domain.User, parentID string) error {
	pid, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return apperrors.NewNotFoundError()
	}
	parent, err := s.files.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NewNotFoundError()
		}
		return apperrors.NewInternalError("failed to look up parent", err)
	}
	if parent.UserID != owner.ID {
		return apperrors.NewNotFoundError()
	}
	if parent.Type != domain.FileTypeFolder {
		return apperrors.NewValidationError("Parent is not a folder")
	}
	return nil
}

// Show returns the file if the principal owns it or it is public. Anything
// else is reported as not found so private files of other users are
// indistinguishable from nonexistent ones.
func (s *fileService) Show(ctx context.Context, principal *domain.User, fileID string) (*domain.FileNode, error) {
	file, err := s.getVisible(ctx, principal, fileID)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// List returns one page of the principal's files under the given parent.
func (s *fileService) List(ctx context.Context, owner *domain.User, parentID string, page int) ([]*domain.FileNode, error) {
	if parentID == "" {
		parentID = domain.RootParentID
	}
	files, err := s.files.ListByParent(ctx, owner.ID, parentID, page)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list files", err)
	}
	return files, nil
}

// SetVisibility flips isPublic on a file the principal owns.
func (s *fileService) SetVisibility(ctx context.Context, owner *domain.User, fileID string, isPublic bool) (*domain.FileNode, error) {
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, apperrors.NewNotFoundError()
	}
	file, err := s.files.SetVisibility(ctx, id, owner.ID, isPublic)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFoundError()
		}
		return nil, apperrors.NewInternalError("failed to update visibility", err)
	}
	return file, nil
}

// ReadContent opens the stored bytes of a visible file. When width names a
// derived size that has not been produced yet, the original content is served
// instead; readers never wait for the thumbnail worker.
func (s *fileService) ReadContent(ctx context.Context, principal *domain.User, fileID string, width int) (*domain.FileContent, error) {
	file, err := s.getVisible(ctx, principal, fileID)
	if err != nil {
		return nil, err
	}
	if file.Type == domain.FileTypeFolder {
		return nil, apperrors.NewIsAFolderError()
	}

	if width > 0 {
		path := s.storage.ThumbnailPath(file.LocalPath, width)
		if r, err := s.storage.Open(path); err == nil {
			return &domain.FileContent{Reader: r, File: file}, nil
		}
	}

	r, err := s.storage.Open(file.LocalPath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFoundError()
		}
		return nil, apperrors.NewInternalError("failed to open file content", err)
	}
	return &domain.FileContent{Reader: r, File: file}, nil
}

// getVisible applies the single visibility rule shared by Show and
// ReadContent: a parse failure, a missing record, and a private file of
// another owner all produce the same not-found error.
func (s *fileService) getVisible(ctx context.Context, principal *domain.User, fileID string) (*domain.FileNode, error) {
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, apperrors.NewNotFoundError()
	}
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFoundError()
		}
		return nil, apperrors.NewInternalError("failed to load file", err)
	}
	if !file.VisibleTo(principal) {
		return nil, apperrors.NewNotFoundError()
	}
	return file, nil
}

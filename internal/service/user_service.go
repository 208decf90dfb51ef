package service

import (
	"context"
	"errors"

	"files-manager/internal/domain"
	apperrors "files-manager/pkg/errors"
)

type userService struct {
	users  domain.UserRepository
	queue  domain.JobQueue
	logger domain.Logger
}

// NewUserService creates the registration service.
func NewUserService(users domain.UserRepository, queue domain.JobQueue, logger domain.Logger) domain.UserService {
	return &userService{users: users, queue: queue, logger: logger}
}

// Register creates a new user and enqueues the welcome notification. The job
// is enqueued only after the user document is durably written.
func (s *userService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("Missing email")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("Missing password")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.NewValidationError("Already exist")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}

	user := &domain.User{Email: email, Password: HashPassword(password)}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration for the same email.
			return nil, apperrors.NewValidationError("Already exist")
		}
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	job := domain.NotificationJob{UserID: created.ID.Hex()}
	if err := s.queue.EnqueueNotification(ctx, job); err != nil {
		// The account exists either way; the user just misses the welcome mail.
		s.logger.Warn("Failed to enqueue welcome notification", "userId", job.UserID, "error", err)
	}

	s.logger.Info("User registered", "userId", created.ID.Hex())
	return created, nil
}

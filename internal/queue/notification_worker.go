package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"files-manager/internal/domain"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const welcomeSubject = "Welcome to Files Manager"

// NotificationWorker consumes welcome mail jobs. A redelivered job sends a
// duplicate mail, which is tolerated.
type NotificationWorker struct {
	users  domain.UserRepository
	mailer domain.Mailer
	logger domain.Logger
}

// NewNotificationWorker creates the notification job handler.
func NewNotificationWorker(users domain.UserRepository, mailer domain.Mailer, logger domain.Logger) *NotificationWorker {
	return &NotificationWorker{users: users, mailer: mailer, logger: logger}
}

// ProcessTask loads the user referenced by the job and hands the welcome mail
// to the mailer. Delivery failures are retryable; a malformed payload or a
// vanished user is terminal.
func (w *NotificationWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var job domain.NotificationJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		return fmt.Errorf("malformed notification payload: %v: %w", err, asynq.SkipRetry)
	}
	if job.UserID == "" {
		return fmt.Errorf("missing userId: %w", asynq.SkipRetry)
	}

	id, err := primitive.ObjectIDFromHex(job.UserID)
	if err != nil {
		return fmt.Errorf("invalid userId %q: %w", job.UserID, asynq.SkipRetry)
	}

	user, err := w.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %s not found: %w", job.UserID, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	body := fmt.Sprintf(
		"<div><h3>Hello %s,</h3>Welcome to Files Manager, a simple file management API. We hope it meets your needs.</div>",
		user.Email,
	)
	if err := w.mailer.Send(user.Email, welcomeSubject, body); err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}

	w.logger.Info("Welcome mail sent", "userId", job.UserID)
	return nil
}

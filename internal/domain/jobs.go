package domain

import "context"

// ThumbnailJob asks the pipeline to derive thumbnails for an uploaded image.
// The durable source of truth is the file record itself; the job only carries
// a reference, re-validated by the worker before any work happens.
type ThumbnailJob struct {
	FileID string `json:"fileId"`
	UserID string `json:"userId"`
}

// NotificationJob asks the pipeline to send a welcome mail to a new user.
type NotificationJob struct {
	UserID string `json:"userId"`
}

// JobQueue is the contract consumed from the durable queue. Enqueued jobs are
// delivered at least once; handlers must tolerate redelivery.
type JobQueue interface {
	EnqueueThumbnail(ctx context.Context, job ThumbnailJob) error
	EnqueueNotification(ctx context.Context, job NotificationJob) error
}

// Mailer delivers outbound mail. Fire-and-forget: a duplicate welcome mail
// after job redelivery is tolerated.
type Mailer interface {
	Send(to, subject, body string) error
}

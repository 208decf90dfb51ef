// Package queue implements the asynchronous job pipeline on top of a
// Redis-backed, at-least-once task queue. Two independent named queues exist:
// one for thumbnail generation and one for notification dispatch. Handlers
// report terminal failures with asynq.SkipRetry; every other error is
// redelivered by the queue framework.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"files-manager/internal/domain"

	"github.com/hibiken/asynq"
)

const (
	// QueueThumbnails carries image thumbnail generation jobs.
	QueueThumbnails = "thumbnails"
	// QueueNotifications carries welcome mail jobs.
	QueueNotifications = "notifications"

	TaskThumbnailGenerate = "thumbnail:generate"
	TaskEmailWelcome      = "email:welcome"

	maxRetries = 5
)

// Client implements domain.JobQueue by enqueueing asynq tasks.
type Client struct {
	client *asynq.Client
	logger domain.Logger
}

// NewClient creates a queue producer connected to the Redis server at addr.
func NewClient(redisAddr string, logger domain.Logger) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
		logger: logger,
	}
}

// EnqueueThumbnail schedules thumbnail generation for an uploaded image.
func (c *Client) EnqueueThumbnail(ctx context.Context, job domain.ThumbnailJob) error {
	return c.enqueue(ctx, TaskThumbnailGenerate, QueueThumbnails, job)
}

// EnqueueNotification schedules a welcome mail for a new user.
func (c *Client) EnqueueNotification(ctx context.Context, job domain.NotificationJob) error {
	return c.enqueue(ctx, TaskEmailWelcome, QueueNotifications, job)
}

func (c *Client) enqueue(ctx context.Context, taskType, queueName string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}
	task := asynq.NewTask(taskType, data)
	info, err := c.client.EnqueueContext(ctx, task, asynq.Queue(queueName), asynq.MaxRetry(maxRetries))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	c.logger.Debug("Job enqueued", "task", taskType, "queue", queueName, "id", info.ID)
	return nil
}

// Close releases the producer connection.
func (c *Client) Close() error {
	return c.client.Close()
}

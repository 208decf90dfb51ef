package queue

import (
	"files-manager/internal/domain"

	"github.com/hibiken/asynq"
)

// Server runs the worker side of the pipeline: N concurrent worker routines
// pulling from both queues. Per-queue delivery is FIFO to the extent the
// underlying queue preserves it; nothing is guaranteed across queues.
type Server struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger domain.Logger
}

// NewServer wires both job handlers into an asynq server.
func NewServer(redisAddr string, concurrency int, thumbnails *ThumbnailWorker, notifications *NotificationWorker, logger domain.Logger) *Server {
	if concurrency < 1 {
		concurrency = 1
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				QueueThumbnails:    1,
				QueueNotifications: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskThumbnailGenerate, thumbnails.ProcessTask)
	mux.HandleFunc(TaskEmailWelcome, notifications.ProcessTask)

	return &Server{srv: srv, mux: mux, logger: logger}
}

// Run starts processing jobs and blocks until Shutdown.
func (s *Server) Run() error {
	s.logger.Info("Worker started", "queues", []string{QueueThumbnails, QueueNotifications})
	return s.srv.Run(s.mux)
}

// Shutdown stops pulling new jobs and waits for in-flight handlers. Jobs cut
// off mid-flight stay unacknowledged and are redelivered.
func (s *Server) Shutdown() {
	s.srv.Shutdown()
}

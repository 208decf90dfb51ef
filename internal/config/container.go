package config

import (
	"context"

	"files-manager/internal/domain"
	"files-manager/internal/mailer"
	"files-manager/internal/queue"
	"files-manager/internal/repository"
	"files-manager/internal/service"
	"files-manager/pkg/logger"
)

// Container holds all application dependencies. Everything is constructed
// once at process start and passed by reference; there are no package-level
// singletons.
type Container struct {
	Config *AppConfig
	Logger domain.Logger

	Mongo   *repository.MongoClient
	KVStore *repository.RedisStore
	Storage *service.DiskStorage
	Queue   *queue.Client
	Mailer  domain.Mailer

	UserRepository domain.UserRepository
	FileRepository domain.FileRepository

	SessionService domain.SessionService
	AuthService    domain.AuthService
	UserService    domain.UserService
	FileService    domain.FileService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	mongo, err := repository.NewMongoClient(cfg.MongoURI(), cfg.DBDatabase, appLogger)
	if err != nil {
		return nil, err
	}
	kv := repository.NewRedisStore(cfg.RedisAddr(), appLogger)

	storage, err := service.NewDiskStorage(cfg.GetFolderPath())
	if err != nil {
		return nil, err
	}

	queueClient := queue.NewClient(cfg.RedisAddr(), appLogger)
	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPSender, appLogger,
	)

	userRepo := repository.NewMongoUserRepository(mongo, appLogger)
	fileRepo := repository.NewMongoFileRepository(mongo, appLogger)

	sessionService := service.NewSessionService(kv, cfg.SessionTTL, appLogger)
	authService := service.NewAuthService(userRepo, sessionService, appLogger)
	userService := service.NewUserService(userRepo, queueClient, appLogger)
	fileService := service.NewFileService(fileRepo, storage, queueClient, appLogger)

	return &Container{
		Config:         cfg,
		Logger:         appLogger,
		Mongo:          mongo,
		KVStore:        kv,
		Storage:        storage,
		Queue:          queueClient,
		Mailer:         smtpMailer,
		UserRepository: userRepo,
		FileRepository: fileRepo,
		SessionService: sessionService,
		AuthService:    authService,
		UserService:    userService,
		FileService:    fileService,
	}, nil
}

// Close releases every external connection the container owns.
func (c *Container) Close(ctx context.Context) {
	if err := c.Queue.Close(); err != nil {
		c.Logger.Warn("Failed to close queue client", "error", err)
	}
	if err := c.KVStore.Close(); err != nil {
		c.Logger.Warn("Failed to close key-value store", "error", err)
	}
	if err := c.Mongo.Close(ctx); err != nil {
		c.Logger.Warn("Failed to close document store", "error", err)
	}
}

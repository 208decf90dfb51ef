package handler

import (
	"context"
	"time"

	"files-manager/internal/domain"
	apperrors "files-manager/pkg/errors"
)

type stubLogger struct{}

func (stubLogger) Info(msg string, fields ...interface{})             {}
func (stubLogger) Error(msg string, err error, fields ...interface{}) {}
func (stubLogger) Debug(msg string, fields ...interface{})            {}
func (stubLogger) Warn(msg string, fields ...interface{})             {}

// stubAuthService resolves a fixed credential pair and a fixed token set.
type stubAuthService struct {
	credentials string
	user        *domain.User
	token       string
	sessions    map[string]*domain.User
}

func (s *stubAuthService) AuthenticateBasic(ctx context.Context, header string) (*domain.User, string, error) {
	if s.user == nil || header != s.credentials {
		return nil, "", apperrors.NewUnauthorizedError()
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	user, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.NewUnauthorizedError()
	}
	return user, nil
}

type stubSessionService struct {
	destroyed []string
	err       error
}

func (s *stubSessionService) Create(ctx context.Context, userID string) (string, error) {
	return "", s.err
}

func (s *stubSessionService) Resolve(ctx context.Context, token string) (string, error) {
	return "", s.err
}

func (s *stubSessionService) Destroy(ctx context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	s.destroyed = append(s.destroyed, token)
	return nil
}

type stubUserService struct {
	registerFn func(email, password string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.registerFn(email, password)
}

// stubFileService dispatches each operation to an injectable function so
// tests can observe arguments and force errors.
type stubFileService struct {
	createFn        func(owner *domain.User, in domain.CreateFileInput) (*domain.FileNode, error)
	showFn          func(principal *domain.User, fileID string) (*domain.FileNode, error)
	listFn          func(owner *domain.User, parentID string, page int) ([]*domain.FileNode, error)
	setVisibilityFn func(owner *domain.User, fileID string, isPublic bool) (*domain.FileNode, error)
	readContentFn   func(principal *domain.User, fileID string, width int) (*domain.FileContent, error)
}

func (s *stubFileService) Create(ctx context.Context, owner *domain.User, in domain.CreateFileInput) (*domain.FileNode, error) {
	return s.createFn(owner, in)
}

func (s *stubFileService) Show(ctx context.Context, principal *domain.User, fileID string) (*domain.FileNode, error) {
	return s.showFn(principal, fileID)
}

func (s *stubFileService) List(ctx context.Context, owner *domain.User, parentID string, page int) ([]*domain.FileNode, error) {
	return s.listFn(owner, parentID, page)
}

func (s *stubFileService) SetVisibility(ctx context.Context, owner *domain.User, fileID string, isPublic bool) (*domain.FileNode, error) {
	return s.setVisibilityFn(owner, fileID, isPublic)
}

func (s *stubFileService) ReadContent(ctx context.Context, principal *domain.User, fileID string, width int) (*domain.FileContent, error) {
	return s.readContentFn(principal, fileID, width)
}

type stubKeyValueStore struct {
	alive bool
}

func (s *stubKeyValueStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (s *stubKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	return "", domain.ErrKeyNotFound
}

func (s *stubKeyValueStore) Delete(ctx context.Context, key string) error { return nil }

func (s *stubKeyValueStore) IsAlive(ctx context.Context) bool { return s.alive }

type stubDocumentStore struct {
	alive bool
	users int64
	files int64
	err   error
}

func (s *stubDocumentStore) IsAlive(ctx context.Context) bool { return s.alive }

func (s *stubDocumentStore) CountUsers(ctx context.Context) (int64, error) {
	return s.users, s.err
}

func (s *stubDocumentStore) CountFiles(ctx context.Context) (int64, error) {
	return s.files, s.err
}

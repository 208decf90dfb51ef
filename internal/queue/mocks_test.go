package queue

import (
	"context"
	"errors"

	"files-manager/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})  {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{}) {}
func (testLogger) Warn(msg string, fields ...interface{})  {}

type stubFileRepo struct {
	files map[primitive.ObjectID]*domain.FileNode
	err   error
}

func newStubFileRepo() *stubFileRepo {
	return &stubFileRepo{files: make(map[primitive.ObjectID]*domain.FileNode)}
}

func (r *stubFileRepo) add(file *domain.FileNode) {
	r.files[file.ID] = file
}

func (r *stubFileRepo) Create(ctx context.Context, file *domain.FileNode) (*domain.FileNode, error) {
	file.ID = primitive.NewObjectID()
	r.files[file.ID] = file
	return file, nil
}

func (r *stubFileRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileNode, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return file, nil
}

func (r *stubFileRepo) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.FileNode, error) {
	if r.err != nil {
		return nil, r.err
	}
	file, ok := r.files[id]
	if !ok || file.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	return file, nil
}

func (r *stubFileRepo) ListByParent(ctx context.Context, ownerID primitive.ObjectID, parentID string, page int) ([]*domain.FileNode, error) {
	return nil, errors.New("not implemented")
}

func (r *stubFileRepo) SetVisibility(ctx context.Context, id, ownerID primitive.ObjectID, isPublic bool) (*domain.FileNode, error) {
	return nil, errors.New("not implemented")
}

type stubUserRepo struct {
	users map[primitive.ObjectID]*domain.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *stubUserRepo) add(user *domain.User) {
	r.users[user.ID] = user
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

package service

import (
	"context"
	"sync"
	"time"

	"files-manager/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock implementations shared by the service tests.

type mockLogger struct{}

func (mockLogger) Info(msg string, fields ...interface{})             {}
func (mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (mockLogger) Debug(msg string, fields ...interface{})            {}
func (mockLogger) Warn(msg string, fields ...interface{})             {}

type fakeKVEntry struct {
	value     string
	expiresAt time.Time
}

// fakeKV is an in-memory stand-in for the Redis store, honoring TTLs.
type fakeKV struct {
	mu      sync.Mutex
	entries map[string]fakeKVEntry
}

func newFakeKV() *fakeKV {
	return &fakeKV{entries: make(map[string]fakeKVEntry)}
}

func (kv *fakeKV) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = fakeKVEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (kv *fakeKV) Get(ctx context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	e, ok := kv.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", domain.ErrKeyNotFound
	}
	return e.value, nil
}

func (kv *fakeKV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.entries, key)
	return nil
}

func (kv *fakeKV) IsAlive(ctx context.Context) bool { return true }

// expire forces an entry past its TTL.
func (kv *fakeKV) expire(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if e, ok := kv.entries[key]; ok {
		e.expiresAt = time.Now().Add(-time.Second)
		kv.entries[key] = e
	}
}

// mockUserRepo is an in-memory user repository.
type mockUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user, nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *mockUserRepo) add(email, passwordHash string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := &domain.User{ID: primitive.NewObjectID(), Email: email, Password: passwordHash}
	r.users[u.ID] = u
	return u
}

func (r *mockUserRepo) remove(id primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// mockFileRepo is an in-memory file repository with the same pagination and
// filter behavior as the Mongo implementation.
type mockFileRepo struct {
	mu    sync.Mutex
	files map[primitive.ObjectID]*domain.FileNode
	order []primitive.ObjectID
}

func newMockFileRepo() *mockFileRepo {
	return &mockFileRepo{files: make(map[primitive.ObjectID]*domain.FileNode)}
}

func (r *mockFileRepo) Create(ctx context.Context, file *domain.FileNode) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file.ID = primitive.NewObjectID()
	r.files[file.ID] = file
	r.order = append(r.order, file.ID)
	return file, nil
}

func (r *mockFileRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.files[id]; ok {
		return f, nil
	}
	return nil, domain.ErrNotFound
}

func (r *mockFileRepo) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.files[id]; ok && f.UserID == ownerID {
		return f, nil
	}
	return nil, domain.ErrNotFound
}

func (r *mockFileRepo) ListByParent(ctx context.Context, ownerID primitive.ObjectID, parentID string, page int) ([]*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.FileNode
	for _, id := range r.order {
		f := r.files[id]
		if f.UserID == ownerID && f.ParentID == parentID {
			matched = append(matched, f)
		}
	}
	start := page * domain.ListPageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + domain.ListPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *mockFileRepo) SetVisibility(ctx context.Context, id, ownerID primitive.ObjectID, isPublic bool) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok || f.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	f.IsPublic = isPublic
	return f, nil
}

// mockQueue records enqueued jobs.
type mockQueue struct {
	mu            sync.Mutex
	thumbnails    []domain.ThumbnailJob
	notifications []domain.NotificationJob
	err           error
}

func (q *mockQueue) EnqueueThumbnail(ctx context.Context, job domain.ThumbnailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.thumbnails = append(q.thumbnails, job)
	return nil
}

func (q *mockQueue) EnqueueNotification(ctx context.Context, job domain.NotificationJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.notifications = append(q.notifications, job)
	return nil
}

package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/store"
)

// MockUserStore implements store.UserStore backed by an in-memory map.
// Per-method function fields let individual tests override behavior.
type MockUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User

	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	UpdateProfileFn func(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)
	UpdateAvatarFn  func(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

// Seed inserts users directly, bypassing validation. For test setup only.
func (m *MockUserStore) Seed(users ...*domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range users {
		m.users[u.ID] = u
	}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *MockUserStore) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	name, about string,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, name, about)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Name = name
	user.About = about
	copied := *user
	return &copied, nil
}

func (m *MockUserStore) UpdateAvatar(
	ctx context.Context,
	id uuid.UUID,
	avatar string,
) (*domain.User, error) {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatar)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user.Avatar = avatar
	copied := *user
	return &copied, nil
}

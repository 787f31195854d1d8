package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// bcrypt hash in HashedPassword; the plaintext Password field is ignored.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, including the
	// stored password hash for login verification.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users. An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile sets the user's name and about fields and returns the
	// updated user. Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)

	// UpdateAvatar sets the user's avatar link and returns the updated user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error)
}

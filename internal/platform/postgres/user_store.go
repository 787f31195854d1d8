package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/platform/logger"
	"github.com/aroundtheus/around-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists when the email unique constraint fires.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}
	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	query := `
		INSERT INTO users (id, name, about, avatar, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.About,
		user.Avatar,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// List implements store.UserStore.List
// An empty table yields an empty slice, not an error.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, hashed_password, created_at, updated_at
		FROM users
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.About,
			&user.Avatar,
			&user.Email,
			&user.HashedPassword,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	name, about string,
) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $2, about = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, about, avatar, email, hashed_password, created_at, updated_at
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id, name, about))
}

// UpdateAvatar implements store.UserStore.UpdateAvatar
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) UpdateAvatar(
	ctx context.Context,
	id uuid.UUID,
	avatar string,
) (*domain.User, error) {
	query := `
		UPDATE users
		SET avatar = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, about, avatar, email, hashed_password, created_at, updated_at
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id, avatar))
}

// scanUser reads a single user row, translating sql.ErrNoRows into the
// user-specific not-found sentinel.
func (s *PostgresUserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		return nil, MapError(err)
	}
	return &user, nil
}

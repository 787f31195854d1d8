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

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
//
// The likes set lives in the card_likes join table with a composite primary
// key, so set membership is enforced by the schema and like/unlike are
// single-statement atomic operations.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. If logger is nil, the default logger is used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return err
	}

	query := `
		INSERT INTO cards (id, name, link, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, card.ID, card.Name, card.Link, card.OwnerID, card.CreatedAt)
	if err != nil {
		if _, ok := IsForeignKeyViolation(err); ok {
			log.Warn("owner does not exist during card creation",
				slog.String("card_id", card.ID.String()),
				slog.String("owner_id", card.OwnerID.String()))
			return fmt.Errorf("%w: owner %s not found", store.ErrInvalidEntity, card.OwnerID)
		}

		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return MapError(err)
	}

	log.Info("card created successfully",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", card.OwnerID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `
		SELECT id, name, link, owner_id, created_at
		FROM cards
		WHERE id = $1
	`
	var card domain.Card
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.OwnerID,
		&card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", store.ErrCardNotFound, err)
		}
		return nil, MapError(err)
	}

	likes, err := s.loadLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	card.Likes = likes

	return &card, nil
}

// List implements store.CardStore.List
// Newest cards are returned first. An empty table yields an empty slice.
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	query := `
		SELECT id, name, link, owner_id, created_at
		FROM cards
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cards := []*domain.Card{}
	byID := map[uuid.UUID]*domain.Card{}
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		card.Likes = []uuid.UUID{}
		cards = append(cards, &card)
		byID[card.ID] = &card
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if len(cards) == 0 {
		return cards, nil
	}

	// One pass over the join table instead of a query per card.
	likeRows, err := s.db.QueryContext(ctx, `SELECT card_id, user_id FROM card_likes`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = likeRows.Close() }()

	for likeRows.Next() {
		var cardID, userID uuid.UUID
		if err := likeRows.Scan(&cardID, &userID); err != nil {
			return nil, MapError(err)
		}
		if card, ok := byID[cardID]; ok {
			card.Likes = append(card.Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete
// Likes are removed by the schema's ON DELETE CASCADE on card_likes.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "card"); err != nil {
		return fmt.Errorf("%w: %v", store.ErrCardNotFound, err)
	}

	log.Info("card deleted successfully", slog.String("card_id", id.String()))
	return nil
}

// AddLike implements store.CardStore.AddLike
// ON CONFLICT DO NOTHING makes re-liking idempotent without a read-modify-write
// cycle, so concurrent likes on the same card cannot lose updates.
func (s *PostgresCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		if constraint, ok := IsForeignKeyViolation(err); ok {
			if constraint == "card_likes_user_id_fkey" {
				return nil, fmt.Errorf("%w: user %s not found", store.ErrInvalidEntity, userID)
			}
			return nil, fmt.Errorf("%w: %v", store.ErrCardNotFound, err)
		}
		return nil, MapError(err)
	}

	return s.GetByID(ctx, cardID)
}

// RemoveLike implements store.CardStore.RemoveLike
// Removing an absent like is a no-op; the card must still exist.
func (s *PostgresCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`
	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		return nil, MapError(err)
	}

	return s.GetByID(ctx, cardID)
}

// loadLikes returns the likes set for a single card.
func (s *PostgresCardStore) loadLikes(ctx context.Context, cardID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id FROM card_likes WHERE card_id = $1`, cardID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	likes := []uuid.UUID{}
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, MapError(err)
		}
		likes = append(likes, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return likes, nil
}

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	// Returns validation errors from the domain Card if data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID, likes included.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// List returns all cards with their likes sets populated.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]*domain.Card, error)

	// Delete removes a card from the store by its ID. Associated likes are
	// removed by the schema's cascading foreign key.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLike records that the given user likes the card. The operation is
	// an atomic set-add: liking an already-liked card is a no-op. Returns
	// the updated card, or ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)

	// RemoveLike removes the given user from the card's likes set. Removing
	// an absent like is a no-op, not an error. Returns the updated card, or
	// ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
}

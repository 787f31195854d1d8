package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty or nil.
	ErrCardOwnerEmpty = errors.New("card owner ID cannot be empty")

	// ErrInvalidCardName is returned when a card's name is outside the 2-30
	// character bounds.
	ErrInvalidCardName = errors.New("card name must be between 2 and 30 characters")

	// ErrInvalidCardLink is returned when a card's picture link is not a valid URL.
	ErrInvalidCardLink = errors.New("card link must be a valid URL")
)

// Card represents a photo posting. The owner is fixed at creation time from
// the authenticated identity and never changes afterwards. Likes is the set
// of IDs of users who liked the card; membership is unique and unordered.
type Card struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	OwnerID   uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewCard creates a new Card owned by the given user.
// It generates a new UUID for the card ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewCard(ownerID uuid.UUID, name, link string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.OwnerID == uuid.Nil {
		return ErrCardOwnerEmpty
	}

	if !validProfileField(c.Name) {
		return ErrInvalidCardName
	}

	if !ValidURL(c.Link) {
		return ErrInvalidCardLink
	}

	return nil
}

// IsOwnedBy reports whether the card belongs to the given user.
func (c *Card) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// IsLikedBy reports whether the given user is in the card's likes set.
func (c *Card) IsLikedBy(userID uuid.UUID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
// Name, about, and avatar are pointers so an omitted field (nil, takes the
// profile default) stays distinguishable from an explicit empty string,
// which fails validation.
type SignupRequest struct {
	Name     *string `json:"name"     validate:"omitnil,required,min=2,max=30"`
	About    *string `json:"about"    validate:"omitnil,required,min=2,max=30"`
	Avatar   *string `json:"avatar"   validate:"omitnil,required,http_url"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
}

// SigninRequest defines the payload for the login endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest defines the payload for PATCH /users/me.
// Both fields are optional: an omitted field (nil) keeps its current value,
// while an explicit empty string fails validation.
type UpdateProfileRequest struct {
	Name  *string `json:"name"  validate:"omitnil,required,min=2,max=30"`
	About *string `json:"about" validate:"omitnil,required,min=2,max=30"`
}

// UpdateAvatarRequest defines the payload for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,http_url"`
}

// CreateCardRequest defines the payload for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,http_url"`
}

// UserResponse represents a user in API responses.
// Password material is structurally absent, not merely omitted.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	About  string    `json:"about"`
	Avatar string    `json:"avatar"`
	Email  string    `json:"email"`
}

// CardResponse represents a card in API responses.
type CardResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	Owner     uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
}

// stringValue collapses an omitted optional field to the empty string.
// Validation has already rejected explicit empty strings, so "" can only
// mean the field was absent.
func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// userToResponse transforms a domain user into its API representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		About:  user.About,
		Avatar: user.Avatar,
		Email:  user.Email,
	}
}

// usersToResponse transforms a list of domain users.
func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, userToResponse(user))
	}
	return out
}

// cardToResponse transforms a domain card into its API representation.
func cardToResponse(card *domain.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}
	return CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

// cardsToResponse transforms a list of domain cards.
func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardToResponse(card))
	}
	return out
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/service/auth"
	"github.com/aroundtheus/around-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, wantStatus: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, wantStatus: http.StatusUnauthorized},
		{name: "unauthorized", err: domain.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "user not found", err: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "card not found", err: store.ErrCardNotFound, wantStatus: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, wantStatus: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, wantStatus: http.StatusBadRequest},
		{name: "domain validation sentinel", err: domain.ErrInvalidCardName, wantStatus: http.StatusBadRequest},
		{name: "validation error struct", err: domain.NewValidationError("cardId", "Invalid Card ID", domain.ErrInvalidID), wantStatus: http.StatusBadRequest},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("fetching card: %w", store.ErrCardNotFound),
			wantStatus: http.StatusNotFound,
		},
		{name: "unknown error", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "nil error", err: nil, wantMessage: MsgServerError},
		{name: "expired token", err: auth.ErrExpiredToken, wantMessage: MsgAuthRequired},
		{name: "forbidden", err: domain.ErrForbidden, wantMessage: MsgForbiddenDelete},
		{name: "user not found", err: store.ErrUserNotFound, wantMessage: MsgUserNotFound},
		{name: "card not found", err: store.ErrCardNotFound, wantMessage: MsgCardNotFound},
		{name: "email exists", err: store.ErrEmailExists, wantMessage: MsgEmailTaken},
		{name: "invalid entity", err: store.ErrInvalidEntity, wantMessage: MsgInvalidData},
		{
			name:        "validation error carries its own message",
			err:         domain.NewValidationError("cardId", "Invalid Card ID passed for liking a card", domain.ErrInvalidID),
			wantMessage: "Invalid Card ID passed for liking a card",
		},
		{
			name:        "internal details never leak",
			err:         errors.New("pq: password authentication failed for user postgres"),
			wantMessage: MsgServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantMessage, GetSafeErrorMessage(tc.err))
		})
	}
}

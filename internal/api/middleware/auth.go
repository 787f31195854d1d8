// Package middleware provides the HTTP middleware chain stages that run
// before route handlers: authentication and request tracing.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/redact"
	"github.com/aroundtheus/around-api/internal/service/auth"
)

// bearerPrefix is the expected authorization scheme marker.
const bearerPrefix = "Bearer "

// authRequiredMessage is the uniform 401 body for every authentication
// failure; the response never hints at which check rejected the request.
const authRequiredMessage = "Authorization Required"

// AuthMiddleware provides JWT bearer-token authentication for routes.
// Authentication is stateless and re-evaluated on every request; the only
// two outcomes are rejection with 401 or an authenticated identity in the
// request context.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the user ID to the request context for authorized requests. The
// wrapped handler is never invoked for requests that fail any check.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredMessage)
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken, auth.ErrInvalidToken, auth.ErrTokenNotYetValid:
				shared.RespondWithError(w, r, http.StatusUnauthorized, authRequiredMessage)
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"An error occurred on the server")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}

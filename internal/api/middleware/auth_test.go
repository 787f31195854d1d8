package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aroundtheus/around-api/internal/mocks"
	"github.com/aroundtheus/around-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		authHeader  string
		jwtService  *mocks.MockJWTService
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer valid-token",
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{UserID: userID},
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:        "missing header",
			authHeader:  "",
			jwtService:  &mocks.MockJWTService{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization Required",
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic dXNlcjpwYXNz",
			jwtService:  &mocks.MockJWTService{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization Required",
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			jwtService: &mocks.MockJWTService{
				ValidateErr: auth.ErrExpiredToken,
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization Required",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			jwtService: &mocks.MockJWTService{
				ValidateErr: auth.ErrInvalidToken,
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization Required",
		},
		{
			name:       "unexpected validation failure",
			authHeader: "Bearer some-token",
			jwtService: &mocks.MockJWTService{
				ValidateErr: errors.New("key store unavailable"),
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An error occurred on the server",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			nextCalled := false
			var gotUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = GetUserID(r)
				w.WriteHeader(http.StatusOK)
			})

			middleware := NewAuthMiddleware(tc.jwtService)

			req := httptest.NewRequest("GET", "/users/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			recorder := httptest.NewRecorder()
			middleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantNext, nextCalled)

			if tc.wantNext {
				assert.Equal(t, userID, gotUserID)
			} else {
				var resp struct {
					Message string `json:"message"`
				}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tc.wantMessage, resp.Message)
			}
		})
	}
}

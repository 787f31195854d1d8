package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/platform/logger"
	"github.com/aroundtheus/around-api/internal/store"
)

// UserHandler handles the authenticated /users endpoints.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userStore: userStore,
		validator: newValidator(),
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users. An empty collection is a successful 200
// response with an empty list, never a 404.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetCurrentUser handles GET /users/me. The identity comes from the request
// context populated by the auth middleware, never from a path parameter.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

// GetUser handles GET /users/{userId}. A malformed ID is a 400, an unknown
// one a 404.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "userId", "Invalid User ID passed for searching a user")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

// UpdateProfile handles PATCH /users/me. Only name and about can change,
// and only on the authenticated user's own record. Omitted fields keep
// their current values.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	// Partial update: a nil field was omitted and keeps its current value.
	// The fill and the update are separate statements, so two concurrent
	// partial updates on the same user are last-write-wins.
	if req.Name == nil || req.About == nil {
		current, err := h.userStore.GetByID(r.Context(), userID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		if req.Name == nil {
			req.Name = &current.Name
		}
		if req.About == nil {
			req.About = &current.About
		}
	}

	user, err := h.userStore.UpdateProfile(r.Context(), userID, *req.Name, *req.About)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("user profile updated", slog.String("user_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req UpdateAvatarRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	user, err := h.userStore.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("user avatar updated", slog.String("user_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

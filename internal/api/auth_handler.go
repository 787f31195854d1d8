package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/platform/logger"
	"github.com/aroundtheus/around-api/internal/redact"
	"github.com/aroundtheus/around-api/internal/service/auth"
	"github.com/aroundtheus/around-api/internal/store"
)

// AuthHandler handles the public signup and signin endpoints.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		validator:  newValidator(),
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup. The email uniqueness check runs before the
// bcrypt hash so a taken email fails fast with 409 instead of paying for an
// unused hash. The unique index remains the final arbiter under races.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict, MsgEmailTaken)
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := domain.NewUser(
		stringValue(req.Name),
		stringValue(req.About),
		stringValue(req.Avatar),
		req.Email,
		req.Password,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	hashed, err := h.hasher.Hash(r.Context(), req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgServerError)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, MsgEmailTaken)
			return
		}
		log.Error("failed to create user", "error", redact.Error(err))
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, userToResponse(user))
}

// Signin handles POST /signin. All authentication failures collapse into the
// same generic 401 so the response never discloses whether the email or the
// password was wrong.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SigninRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgIncorrectLogin)
			return
		}
		log.Error("failed to look up user by email", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgServerError)
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgIncorrectLogin)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token",
			"error", redact.Error(err),
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgServerError)
		return
	}

	log.Debug("user signed in", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

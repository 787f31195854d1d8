package api

import (
	"errors"
	"net/http"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/service/auth"
	"github.com/aroundtheus/around-api/internal/store"
)

// Canonical client-facing messages. These are the only strings a failure
// response may carry besides validator-produced field messages; raw internal
// errors never reach the client.
const (
	MsgAuthRequired      = "Authorization Required"
	MsgIncorrectLogin    = "Incorrect email or password"
	MsgForbiddenDelete   = "You can only delete your own cards"
	MsgUserNotFound      = "User not found"
	MsgCardNotFound      = "Card not found"
	MsgEmailTaken        = "A user with this email already exists"
	MsgInvalidData       = "Invalid data passed to the server"
	MsgServerError       = "An error occurred on the server"
	MsgResourceNotFound  = "Requested resource not found"
	MsgRateLimitExceeded = "You have exceeded the 100 requests in 15 mins limit!"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgServerError
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return MsgAuthRequired

	case errors.Is(err, domain.ErrForbidden):
		return MsgForbiddenDelete

	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound

	case errors.Is(err, store.ErrCardNotFound):
		return MsgCardNotFound

	case errors.Is(err, store.ErrNotFound):
		return MsgResourceNotFound

	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailTaken

	case errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidData

	case isDomainValidationError(err), errors.Is(err, domain.ErrValidation):
		// Domain validation sentinels carry field-attributed, leak-free
		// messages by construction.
		return err.Error()

	default:
		return MsgServerError
	}
}

// HandleAPIError is the terminal stage for handler failures: it maps the
// error to a status code and safe message, logs the full error, and writes
// the uniform {message} body. A non-empty override replaces the derived
// message without changing the status.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, override string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if override != "" {
		message = override
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// isDomainValidationError reports whether err is one of the domain entity
// validation sentinels (invalid name/about/avatar/link/email/password).
func isDomainValidationError(err error) bool {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return true
	}

	for _, sentinel := range []error{
		domain.ErrInvalidUserName,
		domain.ErrInvalidUserAbout,
		domain.ErrInvalidAvatarURL,
		domain.ErrInvalidEmail,
		domain.ErrEmptyEmail,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyPassword,
		domain.ErrInvalidCardName,
		domain.ErrInvalidCardLink,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

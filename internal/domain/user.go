package domain

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default profile values applied when signup omits the optional fields.
const (
	DefaultUserName   = "Jacques Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/avatar_1604080799.jpg"
)

// Profile field length bounds shared by name and about.
const (
	ProfileFieldMinLen = 2
	ProfileFieldMaxLen = 30

	// PasswordMinLen is the minimum plaintext password length accepted at signup.
	PasswordMinLen = 8

	// PasswordMaxLen is bcrypt's practical input limit.
	PasswordMaxLen = 72
)

// Common user validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrInvalidUserName     = errors.New("name must be between 2 and 30 characters")
	ErrInvalidUserAbout    = errors.New("about must be between 2 and 30 characters")
	ErrInvalidAvatarURL    = errors.New("avatar must be a valid URL")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the application.
// The Password field holds the plaintext only transiently during signup and
// must be hashed before the user is stored. Neither password field is ever
// serialized into API responses.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Avatar         string    `json:"avatar"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User from signup input. Empty name, about, and avatar
// take the default profile values. It generates a new UUID for the user ID and
// sets the creation/update timestamps. Returns an error if validation fails.
//
// NOTE: the caller is responsible for hashing the password before storage.
func NewUser(name, about, avatar, email, password string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		About:     strings.TrimSpace(about),
		Avatar:    avatar,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if !validProfileField(u.Name) {
		return ErrInvalidUserName
	}

	if !validProfileField(u.About) {
		return ErrInvalidUserAbout
	}

	if !ValidURL(u.Avatar) {
		return ErrInvalidAvatarURL
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !ValidEmail(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < PasswordMinLen {
			return ErrPasswordTooShort
		}
		if len(u.Password) > PasswordMaxLen {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store must carry a hash.
		return ErrEmptyPassword
	}

	return nil
}

// UpdateProfile replaces the user's name and about fields and bumps the
// update timestamp. Returns an error if the new values are invalid.
func (u *User) UpdateProfile(name, about string) error {
	name = strings.TrimSpace(name)
	about = strings.TrimSpace(about)

	if !validProfileField(name) {
		return ErrInvalidUserName
	}
	if !validProfileField(about) {
		return ErrInvalidUserAbout
	}

	u.Name = name
	u.About = about
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateAvatar replaces the user's avatar link and bumps the update timestamp.
// Returns an error if the link is not a valid URL.
func (u *User) UpdateAvatar(avatar string) error {
	if !ValidURL(avatar) {
		return ErrInvalidAvatarURL
	}

	u.Avatar = avatar
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func validProfileField(s string) bool {
	n := len([]rune(s))
	return n >= ProfileFieldMinLen && n <= ProfileFieldMaxLen
}

// ValidURL reports whether the string is an absolute http(s) URL with a host.
func ValidURL(s string) bool {
	parsed, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ValidEmail performs basic structural validation of an email address:
// a single local part, an @, and a domain containing an interior dot.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Contains(email[at+1:], "@") {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test full signup input
	user, err := NewUser("Marie Curie", "Physicist", "https://example.com/marie.jpg", "marie@example.com", "radium1898")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "Marie Curie" {
		t.Errorf("Expected name %q, got %q", "Marie Curie", user.Name)
	}

	if user.Email != "marie@example.com" {
		t.Errorf("Expected email %s, got %s", "marie@example.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid email
	_, err = NewUser("", "", "", "", "radium1898")
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("", "", "", "invalidemail", "radium1898")
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test invalid password
	_, err = NewUser("", "", "", "marie@example.com", "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	_, err = NewUser("", "", "", "marie@example.com", strings.Repeat("x", PasswordMaxLen+1))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestNewUserDefaults(t *testing.T) {
	user, err := NewUser("", "", "", "explorer@example.com", "password123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != DefaultUserName {
		t.Errorf("Expected default name %q, got %q", DefaultUserName, user.Name)
	}
	if user.About != DefaultUserAbout {
		t.Errorf("Expected default about %q, got %q", DefaultUserAbout, user.About)
	}
	if user.Avatar != DefaultUserAvatar {
		t.Errorf("Expected default avatar %q, got %q", DefaultUserAvatar, user.Avatar)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Name:           "Jacques Cousteau",
		About:          "Explorer",
		Avatar:         "https://example.com/avatar.jpg",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test name length bounds
	invalidUser = validUser
	invalidUser.Name = "X"
	if err := invalidUser.Validate(); err != ErrInvalidUserName {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserName, err)
	}

	invalidUser.Name = strings.Repeat("a", ProfileFieldMaxLen+1)
	if err := invalidUser.Validate(); err != ErrInvalidUserName {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserName, err)
	}

	// Test about length bounds
	invalidUser = validUser
	invalidUser.About = "Y"
	if err := invalidUser.Validate(); err != ErrInvalidUserAbout {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserAbout, err)
	}

	// Test invalid avatar URL
	invalidUser = validUser
	invalidUser.Avatar = "not-a-url"
	if err := invalidUser.Validate(); err != ErrInvalidAvatarURL {
		t.Errorf("Expected error %v, got %v", ErrInvalidAvatarURL, err)
	}

	// Test invalid email
	invalidUser = validUser
	invalidUser.Email = ""
	if err := invalidUser.Validate(); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	invalidUser.Email = "missingdomain@"
	if err := invalidUser.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// A stored user without plaintext must carry a hash
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidateMulticharRunes(t *testing.T) {
	// Length bounds count runes, not bytes
	user := User{
		ID:             uuid.New(),
		Name:           "日本",
		About:          "旅行者です",
		Avatar:         "https://example.com/avatar.jpg",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error for two-rune name, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	user := User{
		ID:             uuid.New(),
		Name:           "Jacques Cousteau",
		About:          "Explorer",
		Avatar:         "https://example.com/avatar.jpg",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}
	before := user.UpdatedAt

	if err := user.UpdateProfile("Ada Lovelace", "Mathematician"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != "Ada Lovelace" {
		t.Errorf("Expected name %q, got %q", "Ada Lovelace", user.Name)
	}
	if user.About != "Mathematician" {
		t.Errorf("Expected about %q, got %q", "Mathematician", user.About)
	}
	if !user.UpdatedAt.After(before) {
		t.Error("Expected UpdatedAt to advance")
	}

	// Invalid values leave the user unchanged
	if err := user.UpdateProfile("Z", "Mathematician"); err != ErrInvalidUserName {
		t.Errorf("Expected error %v, got %v", ErrInvalidUserName, err)
	}
	if user.Name != "Ada Lovelace" {
		t.Errorf("Expected name to remain %q, got %q", "Ada Lovelace", user.Name)
	}
}

func TestUpdateAvatar(t *testing.T) {
	user := User{
		ID:             uuid.New(),
		Name:           "Jacques Cousteau",
		About:          "Explorer",
		Avatar:         "https://example.com/old.jpg",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	if err := user.UpdateAvatar("https://example.com/new.jpg"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Avatar != "https://example.com/new.jpg" {
		t.Errorf("Expected new avatar, got %q", user.Avatar)
	}

	if err := user.UpdateAvatar("ftp://example.com/new.jpg"); err != ErrInvalidAvatarURL {
		t.Errorf("Expected error %v, got %v", ErrInvalidAvatarURL, err)
	}
	if user.Avatar != "https://example.com/new.jpg" {
		t.Errorf("Expected avatar to remain unchanged, got %q", user.Avatar)
	}
}

func TestValidURL(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path/to/image.jpg",
		"https://sub.domain.example.com/a?b=c",
	}
	for _, u := range valid {
		if !ValidURL(u) {
			t.Errorf("Expected %q to be valid", u)
		}
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com/file",
		"https://",
		"not a url at all",
	}
	for _, u := range invalid {
		if ValidURL(u) {
			t.Errorf("Expected %q to be invalid", u)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.org",
		"u+tag@example.co",
	}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("Expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@@example.com",
		"user@domain",
		"user@.com",
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("Expected %q to be invalid", e)
		}
	}
}

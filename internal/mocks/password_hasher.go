package mocks

import (
	"context"
	"errors"

	"github.com/aroundtheus/around-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// ShouldSucceed determines whether Compare succeeds
	ShouldSucceed bool

	// HashResult is returned by Hash when HashFn is not set
	HashResult string

	// HashErr is returned by Hash when HashFn is not set
	HashErr error

	// HashFn allows for custom hashing logic in tests
	HashFn func(ctx context.Context, password string) (string, error)

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(ctx, password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.HashResult != "" {
		return m.HashResult, nil
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

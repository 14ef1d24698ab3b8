// Package apperr defines the error taxonomy shared by the core packages.
// Handlers map these to HTTP statuses; nothing below the transport layer
// knows about status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a lookup by id matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a create violated a uniqueness constraint.
	ErrConflict = errors.New("record already exists")

	// ErrNoOwner means a task referenced a user id that does not exist.
	ErrNoOwner = errors.New("owner does not exist")

	// ErrInvalidCredentials covers every login failure surfaced to clients.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownLogin and ErrBadPassword keep the failure cause typed for
	// logs and tests while both unwrap to ErrInvalidCredentials, so the
	// transport cannot accidentally disclose which one happened.
	ErrUnknownLogin = fmt.Errorf("unknown login: %w", ErrInvalidCredentials)
	ErrBadPassword  = fmt.Errorf("wrong password: %w", ErrInvalidCredentials)

	// ErrTokenInvalid covers malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired means the token was well formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden means the ownership policy denied access to a task.
	ErrForbidden = errors.New("forbidden")
)

// StorageError wraps an unclassified data-store failure. The wrapped error
// is for logs only; clients get an opaque failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

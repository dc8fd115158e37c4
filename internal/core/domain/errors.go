package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired signals that an operation needs an authenticated
	// session. Views render a sign-in prompt instead of failing.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionExpired signals that the backend rejected a token the
	// client still holds. The caller should prompt re-authentication.
	ErrSessionExpired = errors.New("session expired")

	// ErrLoginSuperseded is returned to a login whose result arrived after
	// a newer logout or login already moved the session on. The stale
	// result is discarded without touching state.
	ErrLoginSuperseded = errors.New("login superseded")

	// ErrToggleInFlight rejects a wishlist toggle issued while a previous
	// toggle on the same listing is still unresolved.
	ErrToggleInFlight = errors.New("wishlist update already in progress")

	ErrLandNotFound = errors.New("land not found")
	ErrUserNotFound = errors.New("user not found")
)

// AuthError reports a failed login exchange. Message carries the backend's
// own failure text verbatim when available so it can be shown to the user
// unchanged. Network distinguishes transport failure from credential
// rejection; both surface the same way but log differently.
type AuthError struct {
	Message string
	Network bool
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "login failed"
}

func (e *AuthError) Unwrap() error { return e.Cause }

// SyncError reports a wishlist read or write failure. The optimistic state
// has already been rolled back by the time the caller sees it.
type SyncError struct {
	Op     string // "list", "add", "remove"
	LandID string
	Cause  error
}

func (e *SyncError) Error() string {
	if e.LandID == "" {
		return fmt.Sprintf("wishlist %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("wishlist %s %s failed: %v", e.Op, e.LandID, e.Cause)
}

func (e *SyncError) Unwrap() error { return e.Cause }

// StorageError reports a credential-store read or write failure. Storage
// failures are logged and treated as no-ops; they are never fatal.
type StorageError struct {
	Op    string // "save", "load", "clear"
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("credential store %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// ValidationError reports malformed user input. It is produced at the
// input boundary and never reaches the session core.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

package ports

import (
	"context"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// SessionReader exposes read-only session state to collaborators that must
// render differently per tier but never mutate authentication state.
type SessionReader interface {
	Current() domain.Session
}

// SessionController is the observable session state machine. Exactly one
// instance exists per running client.
//
// Subscribe registers fn to run synchronously after every transition and
// returns its unsubscribe function.
type SessionController interface {
	SessionReader
	Initialize()
	Login(ctx context.Context, email, password string) error
	Logout()
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}

// WishlistSyncer maintains per-listing favorite state reconciled against
// the backend. Toggle applies the flip optimistically and reports the
// settled value: the flipped value on success, the rolled-back value on
// failure.
type WishlistSyncer interface {
	Load(ctx context.Context) error
	IsFavorited(landID string) bool
	Toggle(ctx context.Context, landID string) (favorited bool, err error)
	Entries() []domain.WishlistEntry
}

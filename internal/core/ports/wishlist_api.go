package ports

import (
	"context"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// WishlistAPI is the remote wishlist owned by the backend. List returns
// the full set for the token's user; membership is computed by the caller.
// A rejected token surfaces as domain.ErrSessionExpired.
type WishlistAPI interface {
	List(ctx context.Context, token string) ([]domain.Land, error)
	Add(ctx context.Context, token, landID string) error
	Remove(ctx context.Context, token, landID string) error
}

package ports

import (
	"context"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// CreateLandInput carries the fields of a new listing. Image upload is a
// browser concern and is not part of this client.
type CreateLandInput struct {
	Title       string
	Description string
	District    string
	City        string
	Price       float64
	Size        string
	OwnerID     string
}

// LandAPI exposes the listing catalog. Reads are public; writes require a
// token.
type LandAPI interface {
	List(ctx context.Context) ([]domain.Land, error)
	Get(ctx context.Context, id string) (*domain.Land, error)
	Create(ctx context.Context, token string, in CreateLandInput) (*domain.Land, error)
}

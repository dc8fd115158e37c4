package ports

import (
	"context"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// UpdateUserInput carries the profile fields a user may edit. Empty fields
// are sent as-is; the backend treats the payload as a full replacement of
// the editable profile.
type UpdateUserInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// UserAPI exposes account lookup and profile updates. AdminUpdate uses the
// privileged endpoint that may also reassign the account's role.
type UserAPI interface {
	Get(ctx context.Context, token, id string) (*domain.User, error)
	Update(ctx context.Context, token, id string, in UpdateUserInput) (*domain.User, error)
	AdminUpdate(ctx context.Context, token, id string, in UpdateUserInput, role domain.Role) (*domain.User, error)
}

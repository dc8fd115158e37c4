package ports

import (
	"context"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// LoginResult is the normalized payload of a successful login exchange.
type LoginResult struct {
	Token  string
	UserID string
	Role   domain.Role
}

// AuthAPI performs the login exchange against the backend. It validates no
// input itself; any non-success outcome is returned as *domain.AuthError
// carrying the backend-supplied message when one was present. There is no
// automatic retry.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

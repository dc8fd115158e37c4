package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

// AuthClient performs the login exchange against POST /auth/login.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Login exchanges credentials for a token. Every failure comes back as
// *domain.AuthError: credential rejections carry the backend's message
// verbatim, transport failures are flagged Network so callers can log the
// distinction.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.c.do(ctx, apiCall{
		endpoint: "auth_login",
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     loginRequest{Email: email, Password: password},
		out:      &resp,
	})
	if err != nil {
		var te *transportError
		if errors.As(err, &te) {
			return nil, &domain.AuthError{Network: true, Cause: err}
		}
		var he *httpError
		if errors.As(err, &he) {
			return nil, &domain.AuthError{Message: he.Message, Cause: err}
		}
		return nil, &domain.AuthError{Cause: err}
	}

	if resp.Token == "" {
		// A 2xx without a token is a contract violation, not a rejection.
		return nil, &domain.AuthError{Message: "backend returned no token", Cause: errors.New("empty login response")}
	}

	return &ports.LoginResult{
		Token:  resp.Token,
		UserID: resp.UserID,
		Role:   domain.Role(resp.Role),
	}, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

// UserClient exposes account lookup and profile updates. The admin
// endpoint may additionally reassign roles; the backend enforces the
// privilege, the client's gate only shapes the UI.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

type userDoc struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		Address:     d.Address,
		PhoneNumber: d.PhoneNumber,
		Role:        domain.Role(d.Role),
	}
}

type userResponse struct {
	Data *userDoc `json:"data"`
}

type updateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role,omitempty"`
}

// Get fetches an account by ID.
func (u *UserClient) Get(ctx context.Context, token, id string) (*domain.User, error) {
	var resp userResponse
	err := u.c.do(ctx, apiCall{
		endpoint: "user_get",
		method:   http.MethodGet,
		path:     "/user/" + url.PathEscape(id),
		token:    token,
		out:      &resp,
	})
	if err != nil {
		return nil, normalize(err, domain.ErrUserNotFound)
	}
	if resp.Data == nil {
		return nil, domain.ErrUserNotFound
	}
	user := resp.Data.toDomain()
	return &user, nil
}

// Update replaces the editable profile fields of the caller's own account.
func (u *UserClient) Update(ctx context.Context, token, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return u.update(ctx, token, "/user/"+url.PathEscape(id), "user_update", updateUserRequest{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	})
}

// AdminUpdate edits any account through the privileged endpoint,
// including its role.
func (u *UserClient) AdminUpdate(ctx context.Context, token, id string, in ports.UpdateUserInput, role domain.Role) (*domain.User, error) {
	return u.update(ctx, token, "/user/admin/"+url.PathEscape(id), "user_admin_update", updateUserRequest{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Role:        string(role),
	})
}

func (u *UserClient) update(ctx context.Context, token, path, endpoint string, body updateUserRequest) (*domain.User, error) {
	var resp userResponse
	err := u.c.do(ctx, apiCall{
		endpoint: endpoint,
		method:   http.MethodPut,
		path:     path,
		token:    token,
		body:     body,
		out:      &resp,
	})
	if err != nil {
		return nil, normalize(err, domain.ErrUserNotFound)
	}
	if resp.Data == nil {
		return nil, domain.ErrUserNotFound
	}
	user := resp.Data.toDomain()
	return &user, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// WishlistClient speaks to the remote wishlist: a full-set read plus
// per-listing add and remove.
type WishlistClient struct {
	c *Client
}

func NewWishlistClient(c *Client) *WishlistClient {
	return &WishlistClient{c: c}
}

type wishlistResponse struct {
	Data []landDoc `json:"data"`
}

type wishlistAddRequest struct {
	LandID string `json:"landId"`
}

// List fetches the full wishlist for the token's user.
func (w *WishlistClient) List(ctx context.Context, token string) ([]domain.Land, error) {
	var resp wishlistResponse
	err := w.c.do(ctx, apiCall{
		endpoint: "wishlist_list",
		method:   http.MethodGet,
		path:     "/wishlist",
		token:    token,
		out:      &resp,
	})
	if err != nil {
		return nil, normalize(err, nil)
	}
	return landsToDomain(resp.Data), nil
}

// Add puts a listing on the wishlist.
func (w *WishlistClient) Add(ctx context.Context, token, landID string) error {
	err := w.c.do(ctx, apiCall{
		endpoint: "wishlist_add",
		method:   http.MethodPost,
		path:     "/wishlist",
		token:    token,
		body:     wishlistAddRequest{LandID: landID},
	})
	return normalize(err, domain.ErrLandNotFound)
}

// Remove takes a listing off the wishlist.
func (w *WishlistClient) Remove(ctx context.Context, token, landID string) error {
	err := w.c.do(ctx, apiCall{
		endpoint: "wishlist_remove",
		method:   http.MethodDelete,
		path:     "/wishlist/" + url.PathEscape(landID),
		token:    token,
	})
	return normalize(err, domain.ErrLandNotFound)
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

// LandClient exposes the listing catalog. Reads are public; creation
// requires a token.
type LandClient struct {
	c *Client
}

func NewLandClient(c *Client) *LandClient {
	return &LandClient{c: c}
}

type landsResponse struct {
	Data []landDoc `json:"data"`
}

type landResponse struct {
	Data *landDoc `json:"data"`
}

type createLandRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	District    string  `json:"district"`
	City        string  `json:"city"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
	UserID      string  `json:"userId"`
}

// List fetches the full catalog.
func (l *LandClient) List(ctx context.Context) ([]domain.Land, error) {
	var resp landsResponse
	err := l.c.do(ctx, apiCall{
		endpoint: "lands_list",
		method:   http.MethodGet,
		path:     "/lands",
		out:      &resp,
	})
	if err != nil {
		return nil, normalize(err, nil)
	}
	return landsToDomain(resp.Data), nil
}

// Get fetches a single listing by ID.
func (l *LandClient) Get(ctx context.Context, id string) (*domain.Land, error) {
	var resp landResponse
	err := l.c.do(ctx, apiCall{
		endpoint: "lands_get",
		method:   http.MethodGet,
		path:     "/lands/" + url.PathEscape(id),
		out:      &resp,
	})
	if err != nil {
		return nil, normalize(err, domain.ErrLandNotFound)
	}
	if resp.Data == nil {
		return nil, domain.ErrLandNotFound
	}
	land := resp.Data.toDomain()
	return &land, nil
}

// Create publishes a new listing owned by the token's user.
func (l *LandClient) Create(ctx context.Context, token string, in ports.CreateLandInput) (*domain.Land, error) {
	var resp landResponse
	err := l.c.do(ctx, apiCall{
		endpoint: "lands_create",
		method:   http.MethodPost,
		path:     "/lands",
		token:    token,
		body: createLandRequest{
			Title:       in.Title,
			Description: in.Description,
			District:    in.District,
			City:        in.City,
			Price:       in.Price,
			Size:        in.Size,
			UserID:      in.OwnerID,
		},
		out: &resp,
	})
	if err != nil {
		return nil, normalize(err, nil)
	}
	if resp.Data == nil {
		// Some deployments answer 201 with an empty body; echo back what
		// was sent so the caller still has a listing to render.
		return &domain.Land{
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			Size:        in.Size,
			District:    in.District,
			City:        in.City,
			OwnerID:     in.OwnerID,
		}, nil
	}
	land := resp.Data.toDomain()
	return &land, nil
}

package api

import (
	"time"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

// landDoc is the wire shape of a listing as the backend serves it.
type landDoc struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Size        string   `json:"size,omitempty"`
	District    string   `json:"district"`
	City        string   `json:"city"`
	Images      []string `json:"images,omitempty"`
	UserID      string   `json:"userId"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

func (d landDoc) toDomain() domain.Land {
	created, _ := time.Parse(time.RFC3339, d.CreatedAt) // zero when absent/odd
	return domain.Land{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Size:        d.Size,
		District:    d.District,
		City:        d.City,
		Images:      d.Images,
		OwnerID:     d.UserID,
		CreatedAt:   created,
	}
}

func landsToDomain(docs []landDoc) []domain.Land {
	out := make([]domain.Land, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

package domain

import "time"

// Land is a marketplace listing. Listings are owned by the backend and are
// immutable from the client's point of view; the client only references
// them by ID.
type Land struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Size        string    `json:"size,omitempty"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	Images      []string  `json:"images,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Location renders the "City, District" display form used across listing
// views.
func (l Land) Location() string {
	switch {
	case l.City == "":
		return l.District
	case l.District == "":
		return l.City
	default:
		return l.City + ", " + l.District
	}
}

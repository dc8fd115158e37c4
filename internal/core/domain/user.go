package domain

// User models a marketplace account as returned by the backend.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        Role   `json:"role"`
}

// WishlistEntry is the per-listing favorite view model owned by the
// wishlist synchronizer. It is not persisted locally; membership is
// re-derived from the backend on each mount.
type WishlistEntry struct {
	LandID    string
	Favorited bool
}

package models

// WishlistEntry is the reduced snapshot of a product persisted when it is
// added to the wishlist. It is captured at add time and never re-linked to
// the catalog, so display fields may go stale if the catalog changes across
// releases; that is accepted behavior, not a defect.
type WishlistEntry struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// Snapshot reduces a catalog product to the fields the wishlist keeps.
func Snapshot(p Product) WishlistEntry {
	return WishlistEntry{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Category:    p.Category,
	}
}

package wishlist_controller

import (
	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/ArmanNagariya-Developer/azhari-attar/wishlist"
)

var (
	products *catalog.Catalog
	store    *wishlist.Store
	hub      *notify.Hub
)

// Init wires the catalog, the wishlist store, and the notification hub into
// this controller package, and hooks the WebSocket broadcast onto wishlist
// change events so every mounted view refreshes without polling.
func Init(c *catalog.Catalog, s *wishlist.Store, h *notify.Hub) {
	products = c
	store = s
	hub = h

	hub.Subscribe(notify.EventWishlistChanged, func(notify.Event) {
		broadcastState()
	})
}

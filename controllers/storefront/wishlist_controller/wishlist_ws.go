// wishlist_ws.go
package wishlist_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type wsState struct {
	Event string `json:"event"`
	Count int    `json:"count"`
}

// WishlistWebSocket godoc
// @Summary Live wishlist state for mounted views
// @Description Pushes the wishlist count on every change. Any inbound message is treated as a focus-regain and answered with a fresh read of durable storage.
// @Tags Storefront - Wishlist
// @Router /store/wishlist/ws [get]
func WishlistWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	// Initial state on mount.
	writeState(conn, store.Count())

	for {
		// The storage-change signal does not cover every way the file can be
		// edited underneath us, so a client ping forces a re-read. This is
		// the focus-regain half of the dual trigger.
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
		writeState(conn, store.Count())
	}
}

func broadcastState() {
	count := store.Count()

	wsMu.Lock()
	clients := make([]*websocket.Conn, 0, len(wsClients))
	for client := range wsClients {
		clients = append(clients, client)
	}
	wsMu.Unlock()

	for _, client := range clients {
		writeState(client, count)
	}
}

// writeState serializes writes per process; gorilla connections do not allow
// concurrent writers.
var wsWriteMu sync.Mutex

func writeState(conn *websocket.Conn, count int) {
	wsWriteMu.Lock()
	defer wsWriteMu.Unlock()
	_ = conn.WriteJSON(wsState{Event: "wishlist.changed", Count: count})
}

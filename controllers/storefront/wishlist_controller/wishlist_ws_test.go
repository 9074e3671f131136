package wishlist_controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/wishlist_controller"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsState struct {
	Event string `json:"event"`
	Count int    `json:"count"`
}

func readState(t *testing.T, conn *websocket.Conn) wsState {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var state wsState
	require.NoError(t, conn.ReadJSON(&state))
	return state
}

func TestWebSocketPushesStateOnChange(t *testing.T) {
	router, _ := testRouter(t)
	router.GET("/store/wishlist/ws", wishlist_controller.WishlistWebSocket)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/store/wishlist/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// state arrives immediately on mount
	state := readState(t, conn)
	assert.Equal(t, "wishlist.changed", state.Event)
	assert.Equal(t, 0, state.Count)

	// a mutation in another view is pushed without polling
	w := do(router, http.MethodPost, "/store/wishlist", `{"id":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	state = readState(t, conn)
	assert.Equal(t, 1, state.Count)

	// any inbound message is a focus-regain: answered with a fresh read
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	state = readState(t, conn)
	assert.Equal(t, 1, state.Count)
}

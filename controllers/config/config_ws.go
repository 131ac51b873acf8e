package configControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/marrsDev/DS-CBNode/pricing"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connection handlers run on their own goroutines while broadcasts come from
// admin request handlers, so the client set is guarded by a mutex.
var (
	wsClientsMu sync.Mutex
	wsClients   = make(map[*websocket.Conn]bool)
)

func registerClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	wsClients[conn] = true
}

func unregisterClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	delete(wsClients, conn)
}

// GET /admin/config/ws
//
// Admin dashboards hold this connection open and receive the full pricing
// snapshot every time a glass price or profile surcharge changes.
func ConfigWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	registerClient(conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			unregisterClient(conn)
			break
		}
	}
}

func broadcastConfig(snapshot pricing.Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	// Snapshot the client set under the lock, write outside it. A write to a
	// connection that closed in the meantime just errors and is ignored.
	wsClientsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(wsClients))
	for client := range wsClients {
		conns = append(conns, client)
	}
	wsClientsMu.Unlock()

	for _, client := range conns {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

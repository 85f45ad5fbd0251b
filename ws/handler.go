package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEvents upgrades the request and streams record events until the client leaves.
func (h *Hub) HandleEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := h.Register(conn)
	h.log.Debug("websocket connected", "remote", c.ClientIP())

	client.Send <- []byte(`{"type":"connected"}`)
	go h.writePump(client)
	h.readPump(conn)
	h.log.Debug("websocket disconnected", "remote", c.ClientIP())
}

package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HTTP upgrade handler to WebSocket connections

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// allow all origins for development purposes; can restrict later
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades an authenticated HTTP request to a WebSocket
// connection and registers it with the hub. Must run behind the auth
// middleware.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			return
		}

		client := NewClient(userID.(string), conn, hub)
		hub.Register <- client

		go client.ReadPump()
		go client.WritePump()
	}
}

package realtime

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const ( // ping pong (2-way heartbeat) to keep the connection alive
	WriteWait      = 10 * time.Second    // max time to write a message to the peer
	PongWait       = 60 * time.Second    // max time to wait for a pong from the peer
	PingPeriod     = (PongWait * 9) / 10 // ping before the pong wait expires
	MaxMessageSize = 512                 // maximum message size allowed from the peer
)

// Client is one WebSocket connection belonging to a user. A user can hold
// several at once (multiple tabs, devices).
type Client struct {
	UserID      string
	Conn        *websocket.Conn
	SendChannel chan []byte
	Hub         *Hub
}

func NewClient(userID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		UserID:      userID,
		Conn:        conn,
		SendChannel: make(chan []byte, 64),
		Hub:         hub,
	}
}

// ReadPump drains inbound frames. Clients don't send application data
// upstream; the read loop exists to process pongs and notice disconnects.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(PongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(PongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "user_id", c.UserID, "error", err)
			}
			return
		}
	}
}

// WritePump forwards queued events to the peer and keeps the heartbeat
// going. One writer goroutine per connection; gorilla allows at most one
// concurrent writer.
func (c *Client) WritePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.SendChannel:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

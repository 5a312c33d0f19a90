package client

// ws_client.go handles WebSocket client functionality for the animehub CLI.

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

type wsEvent struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type wsMessagePayload struct {
	SenderID string `json:"sender_id"`
	Content  string `json:"content"`
}

// ListenForEvents opens the realtime stream and prints incoming events
// until interrupted.
func ListenForEvents(apiURL, token string) error {
	wsURL, err := toWebSocketURL(apiURL)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Add("Authorization", "Bearer "+token)

	fmt.Println("\n🔌 Connecting to the realtime stream...")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	fmt.Println("✅ Connected! Waiting for events (Ctrl+C to exit)")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var event wsEvent
			if err := conn.ReadJSON(&event); err != nil {
				log.Println("Read error:", err)
				return
			}
			printEvent(&event)
		}
	}()

	select {
	case <-interrupt:
		log.Println("Closing connection...")
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		return nil
	case <-done:
		return nil
	}
}

func printEvent(event *wsEvent) {
	switch event.Type {
	case "message":
		var payload wsMessagePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return
		}
		color.Cyan("[%s] %s", payload.SenderID, payload.Content)

	case "system":
		var payload map[string]string
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return
		}
		color.Yellow("🔔 %s", payload["content"])
	}
}

func toWebSocketURL(apiURL string) (string, error) {
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}

	scheme := "ws"
	if parsed.Scheme == "https" {
		scheme = "wss"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   parsed.Host,
		Path:   strings.TrimSuffix(parsed.Path, "/") + "/api/ws",
	}
	return u.String(), nil
}

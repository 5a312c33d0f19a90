package realtime

import (
	"context"
	"log/slog"

	"animehub/internal/models"

	"github.com/redis/go-redis/v9"
)

// redisChannel carries events between instances. Every instance
// subscribes; each delivers to whichever of the target's connections it
// holds locally.
const redisChannel = "animehub:events"

// Hub tracks live connections per user and fans events out to them.
// All connection bookkeeping happens on the Run goroutine; the maps are
// never touched from anywhere else.
type Hub struct {
	clients    map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan *Event
	rdb        *redis.Client
}

// NewHub creates the hub. rdb may be nil, in which case events are only
// delivered to connections on this instance.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan *Event, 256),
		rdb:        rdb,
	}
}

// Run owns the client maps. Call it once, in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribe(ctx)
	}

	for {
		select {
		case client := <-h.Register:
			conns := h.clients[client.UserID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.UserID] = conns
			}
			conns[client] = true
			slog.Debug("websocket client connected", "user_id", client.UserID, "connections", len(conns))

		case client := <-h.Unregister:
			if conns, ok := h.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.SendChannel)
					if len(conns) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}

		case event := <-h.broadcast:
			h.deliver(event)

		case <-ctx.Done():
			for _, conns := range h.clients {
				for client := range conns {
					close(client.SendChannel)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			return
		}
	}
}

// deliver pushes an event to the target's local connections. A client
// whose send buffer is full is dropped rather than allowed to stall the
// hub.
func (h *Hub) deliver(event *Event) {
	conns, ok := h.clients[event.TargetID]
	if !ok {
		return
	}

	data, err := event.ToJSON()
	if err != nil {
		return
	}

	for client := range conns {
		select {
		case client.SendChannel <- data:
		default:
			close(client.SendChannel)
			delete(conns, client)
		}
	}
	if len(conns) == 0 {
		delete(h.clients, event.TargetID)
	}
}

// subscribe relays events published by other instances into the local
// broadcast loop.
func (h *Hub) subscribe(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			event, err := EventFromJSON([]byte(msg.Payload))
			if err != nil {
				slog.Warn("dropping malformed realtime event", "error", err)
				continue
			}
			h.broadcast <- event
		case <-ctx.Done():
			return
		}
	}
}

// Publish routes an event to the target user's connections everywhere.
// With redis configured it goes through pub/sub so other instances see it
// too; without, it stays local.
func (h *Hub) Publish(ctx context.Context, event *Event) error {
	if h.rdb != nil {
		data, err := event.ToJSON()
		if err != nil {
			return err
		}
		return h.rdb.Publish(ctx, redisChannel, data).Err()
	}

	select {
	case h.broadcast <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishMessage pushes a stored direct message to the receiver's live
// connections. Satisfies the message service's publisher interface.
func (h *Hub) PublishMessage(ctx context.Context, message *models.Message) error {
	event, err := NewMessageEvent(message)
	if err != nil {
		return err
	}
	return h.Publish(ctx, event)
}

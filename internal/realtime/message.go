package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"animehub/internal/models"
)

// Event protocol definitions

type EventType string

const (
	TypeMessage EventType = "message" // a direct message arrived
	TypeRead    EventType = "read"    // a conversation was marked read
	TypeSystem  EventType = "system"  // server-side notice
)

// Event is the envelope pushed over WebSocket connections and relayed
// through redis between instances. TargetID decides which user's
// connections receive it.
type Event struct {
	Type      EventType       `json:"type"`
	TargetID  string          `json:"target_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewMessageEvent(message *models.Message) (*Event, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      TypeMessage,
		TargetID:  message.ReceiverID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}, nil
}

func NewSystemEvent(targetID, content string) *Event {
	payload, _ := json.Marshal(map[string]string{"content": content})
	return &Event{
		Type:      TypeSystem,
		TargetID:  targetID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON marshals the event for the wire.
func (e *Event) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Error("failed to marshal realtime event", "error", err)
		return nil, err
	}
	return data, nil
}

// EventFromJSON parses an event relayed through redis.
func EventFromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

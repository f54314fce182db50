package ws

import (
	"encoding/json"
	"time"
)

// Event is the envelope broadcast to notification clients.
type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// HubNotifier adapts the hub to the usecase layer's Notifier port.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Publish(event string, payload any) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(Event{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

package websocket

import (
	"context"
	"encoding/json"
	"log/slog"

	"kosmos/internal/event"
)

// Hub fans state-change events out to connected UI clients. Every event
// published on the bus is serialized once and sent to every client; a
// client that cannot keep up is dropped.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	bus        event.Bus
}

func NewHub(bus event.Bus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		bus:        bus,
	}
}

// Run pumps bus events to clients until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	events, unsubscribe := h.bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case e := <-events:
			message, err := json.Marshal(e)
			if err != nil {
				slog.Error("failed to marshal event", "error", err)
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

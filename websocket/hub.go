// Package websocket pushes store events to connected clients.
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"

	"mocksocial/events"
)

// Hub tracks the connected clients of every user. It implements
// events.Notifier: friend events go to both users involved, everything else
// is broadcast.
type Hub struct {
	clients    map[string]*Client
	userConns  map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		userConns:  make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			if h.userConns[client.UserID] == nil {
				h.userConns[client.UserID] = make(map[*Client]bool)
			}
			h.userConns[client.UserID][client] = true
			h.mu.Unlock()
			log.Debugf("[ws] client %s connected for user %s", client.ID, client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			log.Debugf("[ws] client %s disconnected", client.ID)

		case <-ctx.Done():
			h.mu.Lock()
			for _, client := range h.clients {
				h.remove(client)
			}
			h.mu.Unlock()
			log.Info("[ws] hub stopped")
			return
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	delete(h.clients, client.ID)
	if h.userConns[client.UserID] != nil {
		delete(h.userConns[client.UserID], client)
		if len(h.userConns[client.UserID]) == 0 {
			delete(h.userConns, client.UserID)
		}
	}
	client.close()
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Notify(event string, data any) {
	msg := &Message{Event: event, Data: data}

	switch payload := data.(type) {
	case events.Friendship:
		h.SendToUsers([]string{payload.UserID, payload.FriendID}, msg)
	default:
		h.Broadcast(msg)
	}
}

func (h *Hub) Broadcast(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("[ws] failed to marshal %s event: %v", msg.Event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		client.enqueue(data)
	}
}

func (h *Hub) SendToUsers(userIDs []string, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("[ws] failed to marshal %s event: %v", msg.Event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		for client := range h.userConns[userID] {
			client.enqueue(data)
		}
	}
}

func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userConns[userID]) > 0
}

package realtime

import "log"

// Hub manages WebSocket clients and routes notifications by user ID. A user
// can hold several connections (multiple tabs); admins are additionally
// tracked as a group for moderation events.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// userID -> set of that user's connections
	users map[uint]map[*Client]bool

	// admin connections, for events without a single target user
	admins map[*Client]bool

	register   chan *Client
	unregister chan *Client
	deliver    chan deliverMsg
}

type deliverMsg struct {
	userID  uint // 0 targets the admin group
	payload []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		users:      make(map[uint]map[*Client]bool),
		admins:     make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan deliverMsg, 256),
	}
}

// Deliver queues a payload for every connection of one user. A zero userID
// targets the admin group instead.
func (h *Hub) Deliver(userID uint, payload []byte) {
	h.deliver <- deliverMsg{userID: userID, payload: payload}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			if _, ok := h.users[client.userID]; !ok {
				h.users[client.userID] = make(map[*Client]bool)
			}
			h.users[client.userID][client] = true
			if client.isAdmin {
				h.admins[client] = true
			}
			log.Printf("client registered for user %d (total: %d)", client.userID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				log.Printf("client unregistered for user %d (total: %d)", client.userID, len(h.clients))
			}

		case msg := <-h.deliver:
			targets := h.users[msg.userID]
			if msg.userID == 0 {
				targets = h.admins
			}
			for client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					// Client buffer full, remove it
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	delete(h.admins, client)
	close(client.send)
	if conns, ok := h.users[client.userID]; ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.users, client.userID)
		}
	}
}

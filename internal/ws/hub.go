package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected candidates. Messages can target one candidate's
// connections or go to everyone; a slow client is dropped rather than
// allowed to block delivery.
type Hub struct {
	clients     map[*Client]bool
	byCandidate map[uuid.UUID]map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mutex  sync.RWMutex
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		byCandidate: make(map[uuid.UUID]map[*Client]bool),
		broadcast:   make(chan []byte, 1024),
		register:    make(chan *Client, 128),
		unregister:  make(chan *Client, 128),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			if client.candidateID != uuid.Nil {
				conns := h.byCandidate[client.candidateID]
				if conns == nil {
					conns = make(map[*Client]bool)
					h.byCandidate[client.candidateID] = conns
				}
				conns[client] = true
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | total_clients=%d", total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | total_clients=%d", total)
			}

		case message := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.unregister <- client
				}
			}

			if h.logger != nil {
				h.logger.Printf("WS broadcast | clients=%d", len(snapshot))
			}
		}
	}
}

// drop removes the client from both indexes. Callers hold the lock.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	if conns, ok := h.byCandidate[client.candidateID]; ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.byCandidate, client.candidateID)
		}
	}
	close(client.send)
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

// SendTo delivers a message to every open connection of one candidate.
func (h *Hub) SendTo(candidateID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	h.mutex.RLock()
	snapshot := make([]*Client, 0, len(h.byCandidate[candidateID]))
	for c := range h.byCandidate[candidateID] {
		snapshot = append(snapshot, c)
	}
	h.mutex.RUnlock()

	for _, client := range snapshot {
		select {
		case client.send <- message:
		default:
			h.unregister <- client
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

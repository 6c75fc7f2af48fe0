package server

import (
	"context"
	"sync"

	"bela-game/internal/protocol"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages spectator connections and fans round events out to them.
type Hub struct {
	clients        map[*Client]bool
	broadcast      chan []byte
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	done           chan struct{}
	clientMu       sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		broadcast:      make(chan []byte, 64),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
	}
}

// Run starts the Hub's main loop. It returns when ctx is cancelled and
// disconnects every client on the way out.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.clientMu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientMu.Unlock()
			logrus.Info("Spectator hub stopped")
			return

		case client := <-h.register:
			client.ID = uuid.NewString() // Assign a unique ID upon registration
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()
			logrus.WithFields(logrus.Fields{"client": client.ID, "addr": client.conn.RemoteAddr().String()}).Info("Spectator connected")

		case client := <-h.unregister:
			h.removeClient(client)

		case message := <-h.broadcast:
			h.clientMu.RLock()
			var stalled []*Client
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					stalled = append(stalled, client)
				}
			}
			h.clientMu.RUnlock()
			for _, client := range stalled {
				logrus.WithField("client", client.ID).Warn("Spectator channel full, disconnecting")
				h.removeClient(client)
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.clientMu.Lock()
	defer h.clientMu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	logrus.WithField("client", client.ID).Info("Spectator disconnected")
}

// Broadcast queues a message for every connected spectator. It never blocks
// once the hub has stopped.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	return len(h.clients)
}

// handleMessage processes a message received from a spectator.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendToClient(client, pongMsg)
	default:
		logrus.WithFields(logrus.Fields{"client": client.ID, "type": msg.Type}).Warn("Unknown message type from spectator")
		errMsg, _ := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: "Spectators cannot act."})
		h.sendToClient(client, errMsg)
	}
}

func (h *Hub) sendToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- message:
	default:
		logrus.WithField("client", client.ID).Warn("Failed to send message to spectator (channel full)")
	}
}

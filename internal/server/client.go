package server

import (
	"encoding/json"

	"bela-game/internal/protocol"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client represents a single spectator WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string // Unique identifier for the client
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("client", c.ID).Warn("Unexpected close error")
			}
			break // Exit loop on read error or connection close
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			logrus.WithError(err).WithField("client", c.ID).Warn("Error unmarshalling spectator message")
			continue
		}

		select {
		case c.hub.processMessage <- clientMessage{client: c, message: msg}:
		case <-c.hub.done:
			return
		}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logrus.WithError(err).WithField("client", c.ID).Warn("Write error to spectator")
			break
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

package server

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Connection wraps a WebSocket connection with a buffered outgoing queue.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

// MessageHandler receives every message read from a connection.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// ReadPump reads messages from the WebSocket connection until it closes.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.ws.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read message: %v", err)
			}
			break
		}
		h.HandleMessage(c, message)
	}
}

// WritePump drains the outgoing queue into the WebSocket connection.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// SendMessage queues a JSON message for delivery. A full queue drops the
// connection rather than blocking the caller.
func (c *Connection) SendMessage(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	select {
	case c.send <- data:
	default:
		c.ws.Close()
	}
	return nil
}

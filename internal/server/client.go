package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketClient wraps a WebSocket connection carrying JSON frames.
// Writes are serialized; gorilla connections allow only one concurrent
// writer.
type WebSocketClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewWebSocketClient creates a WebSocketClient from an upgraded connection.
func NewWebSocketClient(conn *websocket.Conn) *WebSocketClient {
	return &WebSocketClient{conn: conn}
}

// ReadMessage reads the next text frame from the client (blocking).
func (c *WebSocketClient) ReadMessage() ([]byte, error) {
	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return message, nil
}

// WriteJSON writes a JSON frame to the client.
func (c *WebSocketClient) WriteJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Close closes the connection.
func (c *WebSocketClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *WebSocketClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// SetReadLimit caps the size of incoming frames.
func (c *WebSocketClient) SetReadLimit(limit int64) {
	c.conn.SetReadLimit(limit)
}

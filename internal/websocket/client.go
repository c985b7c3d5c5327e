package websocket

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"codeberg.org/licitgov/server/internal/logger"
)

// creates a new webSocket client connection
func NewClient(id, userID, ipAddress string, isAuthenticated bool, conn *websocket.Conn, onGenerate func(c *Client, msg *Message)) *Client {
	return &Client{
		ID:              id,
		UserID:          userID,
		IPAddress:       ipAddress,
		IsAuthenticated: isAuthenticated,
		conn:            conn,
		send:            make(chan []byte, 256),
		onGenerate:      onGenerate,
	}
}

// reads messages from the webSocket connection and dispatches them
func (c *Client) ReadPump() {
	defer func() {
		c.Close()
		c.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: websocket setup
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: pong handler
		return nil
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket error",
					"client_id", c.ID,
					"error", err,
				)
			}

			break
		}

		var msg Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			logger.ErrorErr(err, "failed to unmarshal message",
				"client_id", c.ID,
			)

			c.SendError("bad_request", "invalid message format")
			continue
		}

		switch msg.Type {
		case TypePing:
			c.Send(&Message{Type: TypePong}) //nolint:errcheck,gosec // G104: best-effort pong
		case TypeGenerate:
			c.onGenerate(c, &msg)
		default:
			c.SendError("bad_request", "unknown message type: "+msg.Type)
		}
	}
}

// writes queued messages to the webSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket timing

			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck,gosec // G104: close message
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket ping timing

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sends a message to the client
func (c *Client) Send(msg *Message) (err error) {
	// recover from panic if channel is closed
	defer func() {
		if r := recover(); r != nil {
			err = ErrConnectionClosed
		}
	}()

	c.mu.RLock()

	if c.closed {
		c.mu.RUnlock()
		return ErrConnectionClosed
	}

	c.mu.RUnlock()

	messageBytes, marshalErr := json.Marshal(msg)
	if marshalErr != nil {
		return marshalErr
	}

	select {
	case c.send <- messageBytes:
		return nil
	default:
		return ErrConnectionClosed
	}
}

// SendPayload marshals payload and sends it under the given message type
func (c *Client) SendPayload(msgType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return c.Send(&Message{Type: msgType, Payload: raw})
}

// SendError sends an error message to the client
func (c *Client) SendError(code, message string) {
	if err := c.SendPayload(TypeError, ErrorPayload{Code: code, Message: message}); err != nil {
		logger.Debug("failed to send error to client",
			"client_id", c.ID,
			"error", err.Error(),
		)
	}
}

// Close marks the client closed and releases its send channel
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	close(c.send)
}

// CheckOrigin accepts every origin outside production. In production the
// Origin header must match one of the ALLOWED_ORIGINS entries exactly.
func CheckOrigin(r *http.Request) bool {
	if os.Getenv("ENVIRONMENT") != "production" {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		logger.Warn("websocket connection rejected, missing origin header")
		return false
	}

	for _, allowed := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	logger.Warn("websocket origin not allowed", "origin", origin)

	return false
}

// GenerateClientID returns a random 32-character hex connection identifier
func GenerateClientID() (string, error) {
	buf := make([]byte, 16)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate client id: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"codeberg.org/licitgov/server/internal/prompts"
	ws "codeberg.org/licitgov/server/internal/websocket"
)

const (
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// WSClient streams document generations over one websocket connection
type WSClient struct {
	endpoint  string
	conn      *websocket.Conn
	connected bool
	mu        sync.Mutex

	events chan tea.Msg
}

// creates a new webSocket client
func NewWSClient() *WSClient {
	endpoint := os.Getenv("LICITGOV_WS_ENDPOINT")
	if endpoint == "" {
		endpoint = "ws://localhost:8080/api/v1/ws"
	}

	if token := os.Getenv("LICITGOV_TOKEN"); token != "" {
		endpoint += "?token=" + token
	}

	return &WSClient{
		endpoint: endpoint,
		events:   make(chan tea.Msg, 64),
	}
}

// Connect establishes the WebSocket connection
func (c *WSClient) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.Dial(c.endpoint, nil) //nolint:bodyclose // gorilla manages the response
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait)) //nolint:errcheck,gosec // G104: pong handler
		return nil
	})
	conn.SetReadDeadline(time.Now().Add(wsPongWait)) //nolint:errcheck,gosec // G104: setup

	c.conn = conn
	c.connected = true

	go c.readPump()
	go c.pingPump()

	return nil
}

// sends periodic pings to keep the connection alive
func (c *WSClient) pingPump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()

		if !c.connected || c.conn == nil {
			c.mu.Unlock()
			return
		}

		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)) //nolint:errcheck,gosec // G104: ping timing
		if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

// continuously reads messages and converts them into tea messages
func (c *WSClient) readPump() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		if c.conn != nil {
			c.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
		}
		c.mu.Unlock()
	}()

	for {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait)) //nolint:errcheck,gosec // G104: deadline refresh

		var msg ws.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			c.events <- StreamErrMsg{Code: "connection_lost", Message: err.Error()}
			return
		}

		switch msg.Type {
		case ws.TypeChunk:
			var payload ws.ChunkPayload
			if err := msg.UnmarshalPayload(&payload); err == nil {
				c.events <- ChunkMsg{Text: payload.Text}
			}

		case ws.TypeDone:
			var payload ws.DonePayload
			if err := msg.UnmarshalPayload(&payload); err == nil {
				c.events <- DoneMsg{Length: payload.Length, Saved: payload.Saved}
			}

		case ws.TypeError:
			var payload ws.ErrorPayload
			if err := msg.UnmarshalPayload(&payload); err == nil {
				c.events <- StreamErrMsg{Code: payload.Code, Message: payload.Message}
			}

		default:
			continue
		}
	}
}

// Generate sends a generation request over the socket
func (c *WSClient) Generate(docType prompts.DocumentType, form prompts.FormData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := json.Marshal(map[string]any{
		"doc_type": docType,
		"form":     form,
	})
	if err != nil {
		return err
	}

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)) //nolint:errcheck,gosec // G104: write timing

	return c.conn.WriteJSON(ws.Message{Type: ws.TypeGenerate, Payload: payload})
}

// WaitForEvent blocks on the next stream event as a tea command
func (c *WSClient) WaitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-c.events
	}
}

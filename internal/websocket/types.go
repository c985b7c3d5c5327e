package websocket

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// message type constants for websocket communication
const (
	// is sent by clients to start a document generation
	TypeGenerate = "generate"

	// is sent by server for every streamed fragment
	TypeChunk = "chunk"

	// is sent by server when a generation finishes
	TypeDone = "done"

	// is sent when an error occurs
	TypeError = "error"

	// is sent by clients to keep the connection alive
	TypePing = "ping"

	// is sent by server in response to ping
	TypePong = "pong"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// maximum message size allowed from peer
	maxMessageSize = 64 * 1024 // 64 KB
)

var ErrConnectionClosed = errors.New("connection closed")

// Message is the envelope for everything crossing the socket
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// UnmarshalPayload decodes the message payload into v
func (m *Message) UnmarshalPayload(v any) error {
	if len(m.Payload) == 0 {
		return errors.New("empty payload")
	}
	return json.Unmarshal(m.Payload, v)
}

// ChunkPayload carries one streamed fragment
type ChunkPayload struct {
	Text string `json:"text"`
}

// DonePayload closes a successful generation
type DonePayload struct {
	Length     int    `json:"length"`
	Saved      bool   `json:"saved"`
	DocumentID string `json:"document_id,omitempty"`
}

// ErrorPayload closes a failed generation
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client wraps one websocket connection
type Client struct {
	ID              string
	UserID          string
	IPAddress       string
	IsAuthenticated bool

	conn   *websocket.Conn
	send   chan []byte
	closed bool
	mu     sync.RWMutex

	onGenerate func(c *Client, msg *Message)
}

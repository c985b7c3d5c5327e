package websocket

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIsAuthenticated(t *testing.T) {
	tests := []struct {
		name            string
		userID          string
		isAuthenticated bool
	}{
		{
			name:            "authenticated user has user ID",
			userID:          "user-123",
			isAuthenticated: true,
		},
		{
			name:            "anonymous user has no user ID",
			userID:          "",
			isAuthenticated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{
				ID:              "test-client",
				UserID:          tt.userID,
				IPAddress:       "192.0.2.1",
				IsAuthenticated: tt.isAuthenticated,
				send:            make(chan []byte, 256),
			}

			assert.Equal(t, tt.isAuthenticated, client.IsAuthenticated)
		})
	}
}

func TestClientSendMessage(t *testing.T) {
	client := &Client{
		ID:     "test-client",
		UserID: "user-1",
		send:   make(chan []byte, 256),
	}

	err := client.SendPayload(TypeChunk, ChunkPayload{Text: "## Documento"})
	assert.NoError(t, err)

	// verify message was queued
	select {
	case received := <-client.send:
		assert.Contains(t, string(received), "chunk")
		assert.Contains(t, string(received), "## Documento")
	default:
		t.Error("expected message to be sent")
	}
}

func TestClientSendError(t *testing.T) {
	client := &Client{
		ID:     "test-client",
		UserID: "user-1",
		send:   make(chan []byte, 256),
	}

	client.SendError("generation_failed", "Erro: upstream indisponível")

	select {
	case msg := <-client.send:
		assert.Contains(t, string(msg), "error")
		assert.Contains(t, string(msg), "generation_failed")
		assert.Contains(t, string(msg), "Erro: upstream indisponível")
	default:
		t.Error("expected error message to be sent")
	}
}

func TestClientSendMessageToClosedChannel(t *testing.T) {
	client := &Client{
		ID:     "test-client",
		UserID: "user-1",
		send:   make(chan []byte, 256),
	}

	// close the send channel
	close(client.send)

	// sending to closed channel should not panic
	err := client.Send(&Message{Type: TypePong})

	// error is expected when sending to closed channel
	assert.Error(t, err)
}

func TestClientSendAfterClose(t *testing.T) {
	client := &Client{
		ID:   "test-client",
		send: make(chan []byte, 256),
	}

	client.Close()

	err := client.Send(&Message{Type: TypePong})
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestClientCloseIsIdempotent(t *testing.T) {
	client := &Client{
		ID:   "test-client",
		send: make(chan []byte, 256),
	}

	client.Close()

	// a second close must not panic on the already-closed channel
	assert.NotPanics(t, func() {
		client.Close()
	})
}

func TestClientSendFullBuffer(t *testing.T) {
	client := &Client{
		ID:   "test-client",
		send: make(chan []byte, 1),
	}

	require.NoError(t, client.Send(&Message{Type: TypePong}))

	// a slow reader must not block the sender
	err := client.Send(&Message{Type: TypePong})
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestMessageUnmarshalPayload(t *testing.T) {
	msg := &Message{
		Type:    TypeChunk,
		Payload: []byte(`{"text":"fragmento"}`),
	}

	var payload ChunkPayload
	require.NoError(t, msg.UnmarshalPayload(&payload))
	assert.Equal(t, "fragmento", payload.Text)
}

func TestMessageUnmarshalEmptyPayload(t *testing.T) {
	msg := &Message{Type: TypeGenerate}

	var payload ChunkPayload
	assert.Error(t, msg.UnmarshalPayload(&payload))
}

func TestMessageUnmarshalMalformedPayload(t *testing.T) {
	msg := &Message{
		Type:    TypeChunk,
		Payload: []byte(`{"text":`),
	}

	var payload ChunkPayload
	assert.Error(t, msg.UnmarshalPayload(&payload))
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		allowed     string
		origin      string
		want        bool
	}{
		{
			name:        "development allows any origin",
			environment: "development",
			origin:      "http://evil.example",
			want:        true,
		},
		{
			name:        "development allows missing origin",
			environment: "development",
			origin:      "",
			want:        true,
		},
		{
			name:        "production rejects missing origin",
			environment: "production",
			allowed:     "https://licitgov.com",
			origin:      "",
			want:        false,
		},
		{
			name:        "production accepts listed origin",
			environment: "production",
			allowed:     "https://licitgov.com, https://app.licitgov.com",
			origin:      "https://app.licitgov.com",
			want:        true,
		},
		{
			name:        "production rejects unlisted origin",
			environment: "production",
			allowed:     "https://licitgov.com",
			origin:      "http://evil.example",
			want:        false,
		},
		{
			name:        "production rejects everything without a list",
			environment: "production",
			allowed:     "",
			origin:      "https://licitgov.com",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.environment)
			t.Setenv("ALLOWED_ORIGINS", tt.allowed)

			req := httptest.NewRequest("GET", "/api/v1/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, CheckOrigin(req))
		})
	}
}

func TestGenerateClientID(t *testing.T) {
	first, err := GenerateClientID()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := GenerateClientID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

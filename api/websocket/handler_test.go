package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/llm"
	ws "codeberg.org/licitgov/server/internal/websocket"
	"codeberg.org/licitgov/server/licitgov/documents"
)

type fakeStreamer struct {
	fragments []string
	calls     int
}

func (f *fakeStreamer) StreamText(_ context.Context, _ llm.StreamRequest, onChunk func(string)) error {
	f.calls++
	for _, fragment := range f.fragments {
		onChunk(fragment)
	}
	return nil
}

func (f *fakeStreamer) Model() string { return "fake-model" }

type fakeSaver struct {
	calls []documents.SaveRequest
}

func (f *fakeSaver) Save(_ context.Context, req documents.SaveRequest) (*documents.Document, error) {
	f.calls = append(f.calls, req)
	return &documents.Document{ID: "doc-1", UserID: req.UserID}, nil
}

func dialTestServer(t *testing.T, streamer llm.Streamer, gate *generate.Gate, saver DocumentSaver, query string) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ws", Handler(generate.NewService(streamer), gate, saver))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close() //nolint:errcheck,gosec // G104: test cleanup
	}
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck,gosec // G104: test cleanup

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	return conn
}

func sendGenerate(t *testing.T, conn *websocket.Conn, docType string, form map[string]any) {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"doc_type": docType, "form": form})
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(ws.Message{Type: ws.TypeGenerate, Payload: payload}))
}

func readMessage(t *testing.T, conn *websocket.Conn) *ws.Message {
	t.Helper()

	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return &msg
}

func TestHandler_InvalidRequestNeverHoldsGate(t *testing.T) {
	streamer := &fakeStreamer{fragments: []string{"x"}}
	gate := generate.NewGate()
	conn := dialTestServer(t, streamer, gate, &fakeSaver{}, "")

	sendGenerate(t, conn, "etp", map[string]any{"object_description": "   "})

	msg := readMessage(t, conn)
	require.Equal(t, ws.TypeError, msg.Type)

	var payload ws.ErrorPayload
	require.NoError(t, msg.UnmarshalPayload(&payload))
	assert.Equal(t, "validation_error", payload.Code)

	assert.Equal(t, 0, streamer.calls, "model must not be called")

	// the same session can generate immediately, nothing was acquired
	sendGenerate(t, conn, "etp", map[string]any{"object_description": "Aquisição de notebooks"})

	msg = readMessage(t, conn)
	assert.Equal(t, ws.TypeChunk, msg.Type)
}

func TestHandler_StreamsChunksThenDone(t *testing.T) {
	streamer := &fakeStreamer{fragments: []string{"## Doc", " gerado"}}
	conn := dialTestServer(t, streamer, generate.NewGate(), &fakeSaver{}, "")

	sendGenerate(t, conn, "etp", map[string]any{"object_description": "Aquisição de notebooks"})

	first := readMessage(t, conn)
	require.Equal(t, ws.TypeChunk, first.Type)

	var chunk ws.ChunkPayload
	require.NoError(t, first.UnmarshalPayload(&chunk))
	assert.Equal(t, "## Doc", chunk.Text)

	second := readMessage(t, conn)
	require.Equal(t, ws.TypeChunk, second.Type)

	third := readMessage(t, conn)
	require.Equal(t, ws.TypeDone, third.Type)

	var done ws.DonePayload
	require.NoError(t, third.UnmarshalPayload(&done))
	assert.Equal(t, len("## Doc gerado"), done.Length)
	assert.False(t, done.Saved, "anonymous streams are never persisted")
}

func TestHandler_SavesForAuthenticatedClient(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-websocket")

	token, err := auth.GenerateJWT("user-1", "user-1@licitgov.com", false)
	require.NoError(t, err)

	fragments := []string{"## Termo ", strings.Repeat("a", 60)}
	full := fragments[0] + fragments[1]

	saver := &fakeSaver{}
	conn := dialTestServer(t, &fakeStreamer{fragments: fragments}, generate.NewGate(), saver, "?token="+token)

	sendGenerate(t, conn, "tr", map[string]any{"object_description": "Aquisição de notebooks"})

	var done *ws.Message
	for done == nil {
		msg := readMessage(t, conn)
		if msg.Type == ws.TypeDone {
			done = msg
		} else {
			require.Equal(t, ws.TypeChunk, msg.Type)
		}
	}

	var payload ws.DonePayload
	require.NoError(t, done.UnmarshalPayload(&payload))
	assert.True(t, payload.Saved)
	assert.Equal(t, "doc-1", payload.DocumentID)

	require.Len(t, saver.calls, 1, "exactly one save for one generation")
	call := saver.calls[0]
	assert.Equal(t, "user-1", call.UserID)
	assert.Equal(t, "tr", call.Type)
	assert.Equal(t, full, call.Content, "the full accumulated buffer is stored")
	assert.Equal(t, generate.Preview(full), call.Preview)
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-websocket")

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ws", Handler(generate.NewService(&fakeStreamer{}), generate.NewGate(), &fakeSaver{}))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=garbage"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, 401, resp.StatusCode)
		resp.Body.Close() //nolint:errcheck,gosec // G104: test cleanup
	}
	if conn != nil {
		conn.Close() //nolint:errcheck,gosec // G104: test cleanup
	}
}

package websocket

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/internal/errors"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/logger"
	ws "codeberg.org/licitgov/server/internal/websocket"
	"codeberg.org/licitgov/server/licitgov/documents"
)

// DocumentSaver persists completed generations for authenticated clients
type DocumentSaver interface {
	Save(ctx context.Context, req documents.SaveRequest) (*documents.Document, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     ws.CheckOrigin,
}

// generation can run long between fragments when search is enabled
const generateTimeout = 5 * time.Minute

// ConnectParams are the query parameters accepted on connect
type ConnectParams struct {
	Token string `form:"token"`
}

// handles WebSocket connections for streamed document generation.
// clients send a generate message and receive chunk, done, and error
// messages back on the same connection.
func Handler(svc *generate.Service, gate *generate.Gate, saver DocumentSaver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params ConnectParams
		if err := c.ShouldBindQuery(&params); err != nil {
			errors.BadRequest(c, "invalid parameters", err)
			return
		}

		var userID string

		if params.Token != "" {
			claims, err := auth.ValidateJWT(params.Token)
			if err != nil {
				errors.Unauthorized(c, "invalid or expired token")
				return
			}
			userID = claims.UserID
		}

		clientID, err := ws.GenerateClientID()
		if err != nil {
			errors.InternalError(c, "failed to generate client ID", err)
			return
		}

		ipAddress := c.ClientIP()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.ErrorErr(err, "failed to upgrade connection",
				"ip", ipAddress,
			)

			return
		}

		client := ws.NewClient(clientID, userID, ipAddress, userID != "", conn, generateHandler(svc, gate, saver))

		logger.Info("websocket client connected",
			"client_id", clientID,
			"authenticated", userID != "",
		)

		go client.WritePump()
		client.ReadPump()
	}
}

// sessionKey mirrors the REST surface: authenticated users hold the
// gate by user ID, anonymous clients by IP.
func sessionKey(client *ws.Client) string {
	if client.IsAuthenticated {
		return client.UserID
	}
	return client.IPAddress
}

// returns the dispatch callback running one generation per message
func generateHandler(svc *generate.Service, gate *generate.Gate, saver DocumentSaver) func(client *ws.Client, msg *ws.Message) {
	return func(client *ws.Client, msg *ws.Message) {
		var req generate.Request
		if err := msg.UnmarshalPayload(&req); err != nil {
			client.SendError("validation_error", "failed to parse generate request")
			return
		}

		if err := req.Validate(); err != nil {
			code, message := generate.ClassifyError(err)
			client.SendError(code, message)
			return
		}

		key := sessionKey(client)

		if !gate.TryAcquire(key) {
			client.SendError("generation_in_progress", "Já existe uma geração em andamento para esta sessão.")
			return
		}

		go func() {
			var failure string
			defer func() { gate.Release(key, failure) }()

			ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
			defer cancel()

			finalText, err := svc.Generate(ctx, req, func(fragment string) {
				if sendErr := client.SendPayload(ws.TypeChunk, ws.ChunkPayload{Text: fragment}); sendErr != nil {
					logger.Debug("dropping fragment for closed client",
						"client_id", client.ID,
					)
				}
			})

			if err != nil {
				code, message := generate.ClassifyError(err)
				failure = message
				client.SendError(code, message)
				return
			}

			done := ws.DonePayload{Length: len(finalText)}

			if client.IsAuthenticated && generate.SaveWorthy(finalText) {
				doc, saveErr := saver.Save(ctx, documents.SaveRequest{
					UserID:  client.UserID,
					Type:    string(req.DocType),
					Title:   req.DocType.Label(),
					Content: finalText,
					Preview: generate.Preview(finalText),
				})

				if saveErr != nil {
					logger.ErrorErr(saveErr, "failed to save generated document",
						"user_id", client.UserID,
						"doc_type", string(req.DocType),
					)
				} else {
					done.Saved = true
					done.DocumentID = doc.ID
				}
			}

			if sendErr := client.SendPayload(ws.TypeDone, done); sendErr != nil {
				logger.Debug("client gone before done message",
					"client_id", client.ID,
				)
			}
		}()
	}
}

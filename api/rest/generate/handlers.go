package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/licitgov/server/internal/auth"
	apperrors "codeberg.org/licitgov/server/internal/errors"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/logger"
	"codeberg.org/licitgov/server/internal/prompts"
	"codeberg.org/licitgov/server/licitgov/documents"
)

// sessionKey identifies the logical session holding the generation
// gate: the user ID when authenticated, the client IP otherwise.
func sessionKey(c *gin.Context) string {
	if userID, ok := auth.GetUserID(c); ok {
		return userID
	}
	return c.ClientIP()
}

// Handler godoc
// @Summary Generate a procurement document
// @Description Streams the generated document over SSE as chunk events, closing with a done or error event. One generation per session at a time
// @Tags generate
// @Accept json
// @Produce text/event-stream
// @Param request body generate.Request true "Document type and process facts"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/generate [post]
// @Security BearerAuth
func Handler(svc *generate.Service, gate *generate.Gate, saver DocumentSaver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generate.Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.ValidationError(c, err)
			return
		}

		// invalid requests never touch the gate or the stream headers
		if err := req.Validate(); err != nil {
			apperrors.ValidationError(c, err)
			return
		}

		key := sessionKey(c)

		if !gate.TryAcquire(key) {
			apperrors.GenerationInProgress(c)
			return
		}

		var failure string
		defer func() { gate.Release(key, failure) }()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		flusher, _ := c.Writer.(http.Flusher)

		finalText, err := svc.Generate(c.Request.Context(), req, func(fragment string) {
			c.SSEvent("chunk", chunkEvent{Text: fragment})
			if flusher != nil {
				flusher.Flush()
			}
		})

		if err != nil {
			code, message := generate.ClassifyError(err)
			failure = message

			c.SSEvent("error", errorEvent{Code: code, Message: message})
			if flusher != nil {
				flusher.Flush()
			}
			return
		}

		done := doneEvent{Length: len(finalText)}

		userID, authenticated := auth.GetUserID(c)

		if authenticated && generate.SaveWorthy(finalText) {
			doc, saveErr := saver.Save(c.Request.Context(), documents.SaveRequest{
				UserID:  userID,
				Type:    string(req.DocType),
				Title:   req.DocType.Label(),
				Content: finalText,
				Preview: generate.Preview(finalText),
			})

			if saveErr != nil {
				logger.ErrorErr(saveErr, "failed to save generated document",
					"user_id", userID,
					"doc_type", string(req.DocType),
				)
			} else {
				done.Saved = true
				done.DocumentID = doc.ID
			}
		}

		c.SSEvent("done", done)
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// TypesHandler godoc
// @Summary List available document types
// @Tags generate
// @Produce json
// @Success 200 {object} TypesResponse
// @Router /api/v1/generate/types [get]
func TypesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []DocumentTypeInfo

		for _, t := range prompts.AllTypes() {
			list = append(list, DocumentTypeInfo{
				Type:        string(t),
				Label:       t.Label(),
				WebSearch:   t.NeedsSearch(),
				NeedsExtras: t == prompts.DocTypeImpugnacao,
			})
		}

		c.JSON(http.StatusOK, TypesResponse{Types: list})
	}
}

// StatusHandler godoc
// @Summary Generation status for the caller's session
// @Tags generate
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /api/v1/generate/status [get]
func StatusHandler(gate *generate.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		generating, lastErr := gate.Status(sessionKey(c))

		c.JSON(http.StatusOK, StatusResponse{
			Generating: generating,
			LastError:  lastErr,
		})
	}
}

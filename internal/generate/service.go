package generate

import (
	"context"
	"strings"

	"codeberg.org/licitgov/server/internal/llm"
	"codeberg.org/licitgov/server/internal/logger"
	"codeberg.org/licitgov/server/internal/prompts"
)

// Service drives a single document generation end to end: prompt
// composition, streaming, and accumulation.
type Service struct {
	streamer llm.Streamer
}

func NewService(streamer llm.Streamer) *Service {
	return &Service{
		streamer: streamer,
	}
}

// Generate streams the document for req, forwarding every non-empty
// fragment to onChunk in arrival order and returning the full
// accumulated text. onChunk may be nil.
func (s *Service) Generate(ctx context.Context, req Request, onChunk func(string)) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt := prompts.Compose(req.DocType, req.Form)

	var buf strings.Builder

	err := s.streamer.StreamText(ctx, llm.StreamRequest{
		SystemInstruction: prompts.SystemInstruction,
		Prompt:            prompt,
		EnableSearch:      req.DocType.NeedsSearch(),
	}, func(fragment string) {
		buf.WriteString(fragment)
		if onChunk != nil {
			onChunk(fragment)
		}
	})
	if err != nil {
		logger.ErrorErr(err, "document generation failed",
			"doc_type", string(req.DocType),
			"model", s.streamer.Model())
		return "", err
	}

	logger.Info("document generated",
		"doc_type", string(req.DocType),
		"length", buf.Len())

	return buf.String(), nil
}

// SaveWorthy reports whether a completed generation should be persisted.
func SaveWorthy(finalText string) bool {
	return len(finalText) >= saveThreshold
}

// Preview returns the excerpt stored alongside a saved document.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

package llm

import "context"

// StreamRequest describes a single text generation request.
type StreamRequest struct {
	SystemInstruction string
	Prompt            string
	EnableSearch      bool
}

// Streamer generates text incrementally, invoking onChunk for every
// non-empty fragment in arrival order. Implementations return only
// after the stream is exhausted or fails.
type Streamer interface {
	StreamText(ctx context.Context, req StreamRequest, onChunk func(string)) error
	Model() string
}

package generate

import (
	"context"

	"codeberg.org/licitgov/server/licitgov/documents"
)

// DocumentSaver persists completed generations for authenticated users
type DocumentSaver interface {
	Save(ctx context.Context, req documents.SaveRequest) (*documents.Document, error)
}

// DocumentTypeInfo describes one entry of the document catalog
type DocumentTypeInfo struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	WebSearch   bool   `json:"web_search"`
	NeedsExtras bool   `json:"needs_extras"`
}

// TypesResponse lists the available document types
type TypesResponse struct {
	Types []DocumentTypeInfo `json:"types"`
}

// StatusResponse reports per-session generation state
type StatusResponse struct {
	Generating bool   `json:"generating"`
	LastError  string `json:"last_error,omitempty"`
}

// chunkEvent is the payload of one streamed fragment
type chunkEvent struct {
	Text string `json:"text"`
}

// doneEvent closes a successful stream
type doneEvent struct {
	Length     int    `json:"length"`
	Saved      bool   `json:"saved"`
	DocumentID string `json:"document_id,omitempty"`
}

// errorEvent closes a failed stream
type errorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

package generate

import (
	"errors"
	"strings"

	"codeberg.org/licitgov/server/internal/prompts"
)

// ErrMissingObjectDescription is returned before any model call when the
// request lacks an object description.
var ErrMissingObjectDescription = errors.New("a descrição do objeto é obrigatória")

// ErrUnknownDocumentType is returned for document types outside the catalog.
var ErrUnknownDocumentType = errors.New("tipo de documento desconhecido")

// Request carries everything needed to generate one document.
type Request struct {
	DocType prompts.DocumentType `json:"doc_type" binding:"required"`
	Form    prompts.FormData     `json:"form" binding:"required"`
}

// Validate rejects the request before any session state is touched or
// any model call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Form.ObjectDescription) == "" {
		return ErrMissingObjectDescription
	}

	if !r.DocType.Valid() {
		return ErrUnknownDocumentType
	}

	return nil
}

// minimum accumulated length for a generation to be worth persisting
const saveThreshold = 50

// maximum rune count of the stored preview excerpt
const previewLength = 150

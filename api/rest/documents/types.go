package documents

import "codeberg.org/licitgov/server/licitgov/documents"

// DocumentsResponse wraps a user's saved documents
type DocumentsResponse struct {
	Documents []*documents.Document `json:"documents"`
}

// DocumentResponse wraps a single saved document
type DocumentResponse struct {
	Document *documents.Document `json:"document"`
}

// ExportRequest carries unsaved text for direct export
type ExportRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/licitgov/server/internal/auth"
	apperrors "codeberg.org/licitgov/server/internal/errors"
	"codeberg.org/licitgov/server/internal/markdown"
	"codeberg.org/licitgov/server/licitgov/documents"
)

// ListDocuments godoc
// @Summary List the caller's saved documents
// @Description Documents belonging to the authenticated user, newest first
// @Tags documents
// @Produce json
// @Success 200 {object} DocumentsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/documents [get]
// @Security BearerAuth
func ListDocuments(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apperrors.Unauthorized(c, "")
			return
		}

		list, err := docRepo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			apperrors.InternalError(c, "failed to list documents", err)
			return
		}

		c.JSON(http.StatusOK, DocumentsResponse{Documents: list})
	}
}

// GetDocument godoc
// @Summary Get one saved document
// @Description Fetches a document owned by the authenticated user
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/documents/{id} [get]
// @Security BearerAuth
func GetDocument(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apperrors.Unauthorized(c, "")
			return
		}

		doc, err := docRepo.Get(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				apperrors.NotFound(c, "document")
				return
			}
			apperrors.InternalError(c, "failed to fetch document", err)
			return
		}

		c.JSON(http.StatusOK, DocumentResponse{Document: doc})
	}
}

// DeleteDocument godoc
// @Summary Delete one saved document
// @Description Removes a document owned by the authenticated user
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204 {string} string ""
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/documents/{id} [delete]
// @Security BearerAuth
func DeleteDocument(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apperrors.Unauthorized(c, "")
			return
		}

		err := docRepo.Delete(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				apperrors.NotFound(c, "document")
				return
			}
			apperrors.InternalError(c, "failed to delete document", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// ExportDocument godoc
// @Summary Export a saved document as .doc
// @Description Renders the stored markdown into a Word-importable file
// @Tags documents
// @Produce application/msword
// @Param id path string true "Document ID"
// @Success 200 {string} string "Word file"
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/documents/{id}/export [get]
// @Security BearerAuth
func ExportDocument(docRepo *documents.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apperrors.Unauthorized(c, "")
			return
		}

		doc, err := docRepo.Get(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				apperrors.NotFound(c, "document")
				return
			}
			apperrors.InternalError(c, "failed to fetch document", err)
			return
		}

		writeWordFile(c, doc.Title, doc.Content)
	}
}

// ExportText godoc
// @Summary Export unsaved text as .doc
// @Description Renders arbitrary markdown text into a Word-importable file without persisting it
// @Tags documents
// @Accept json
// @Produce application/msword
// @Param request body ExportRequest true "Title and content"
// @Success 200 {string} string "Word file"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/export [post]
func ExportText() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.ValidationError(c, err)
			return
		}

		writeWordFile(c, req.Title, req.Content)
	}
}

func writeWordFile(c *gin.Context, title, content string) {
	payload := markdown.ExportWord(content, title)
	filename := markdown.ExportFilename(title)

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, markdown.WordMIMEType, payload)
}

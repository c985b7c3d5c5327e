package documents

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/licitgov/documents"
)

// registers saved-document and export routes
func RegisterRoutes(router *gin.RouterGroup, docRepo *documents.Repository) {
	docs := router.Group("/documents")
	docs.Use(auth.AuthMiddleware())
	{
		docs.GET("", ListDocuments(docRepo))
		docs.GET("/:id", GetDocument(docRepo))
		docs.DELETE("/:id", DeleteDocument(docRepo))
		docs.GET("/:id/export", ExportDocument(docRepo))
	}

	// direct export of unsaved text does not require a session
	router.POST("/export", ExportText())
}

package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/licitgov/server/api/rest/admin"
	"codeberg.org/licitgov/server/api/rest/auth"
	"codeberg.org/licitgov/server/api/rest/documents"
	"codeberg.org/licitgov/server/api/rest/generate"
	"codeberg.org/licitgov/server/api/rest/health"
	"codeberg.org/licitgov/server/api/websocket"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		documents.RegisterRoutes(v1, server.docRepo)
		generate.RegisterRoutes(v1, server.services.Generate, server.gate, server.docRepo)
		admin.RegisterRoutes(v1, server.userRepo, server.docRepo)
		v1.GET("/ws", websocket.Handler(server.services.Generate, server.gate, server.docRepo))
	}
}

package admin

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/licitgov/server/internal/auth"
	"codeberg.org/licitgov/server/licitgov/documents"
	"codeberg.org/licitgov/server/licitgov/users"
)

func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository, docRepo *documents.Repository) {
	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.AdminMiddleware())

	admin.GET("/users", ListUsers(userRepo))
	admin.POST("/users", CreateUser(userRepo))
	admin.PUT("/users/:id/toggle", ToggleUserStatus(userRepo))
	admin.DELETE("/users/:id", DeleteUser(userRepo))
	admin.GET("/stats", GetStats(userRepo, docRepo))
}

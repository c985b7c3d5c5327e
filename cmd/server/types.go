package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/licitgov/server/internal/config"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/llm"
	"codeberg.org/licitgov/server/licitgov/documents"
	"codeberg.org/licitgov/server/licitgov/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	docRepo  *documents.Repository
	services *Services
	gate     *generate.Gate
	router   *gin.Engine
}

// holds all external service clients
type Services struct {
	Streamer llm.Streamer
	Generate *generate.Service
}

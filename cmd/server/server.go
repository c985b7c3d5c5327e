package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/licitgov/server/internal/config"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/logger"
	"codeberg.org/licitgov/server/licitgov/documents"
	"codeberg.org/licitgov/server/licitgov/users"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small, hosted poolers usually cap connections low
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// pgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	docRepo := documents.NewRepository(db)

	// the primary admin must always be reachable with the configured password
	admin, err := userRepo.EnsureAdmin(ctx, cfg.AdminPassword)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("admin account restored", "user_id", admin.ID)

	services, err := InitializeServices(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	router := gin.Default()

	server := &Server{
		db:       db,
		config:   cfg,
		userRepo: userRepo,
		docRepo:  docRepo,
		services: services,
		gate:     generate.NewGate(),
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

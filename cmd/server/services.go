package main

import (
	"context"
	"fmt"

	"codeberg.org/licitgov/server/internal/config"
	"codeberg.org/licitgov/server/internal/generate"
	"codeberg.org/licitgov/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	streamer, err := llm.NewGeminiStreamer(context.Background(), llm.GeminiConfig{
		APIKey: cfg.GeminiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Services{
		Streamer: streamer,
		Generate: generate.NewService(streamer),
	}, nil
}

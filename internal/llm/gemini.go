package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	defaultModel           = "gemini-2.5-flash"
	defaultTemperature     = 0.4
	defaultTopP            = 0.95
	defaultTopK            = 40
	defaultMaxOutputTokens = 8192
)

// ErrMissingAPIKey is returned at construction time, before any network call.
var ErrMissingAPIKey = fmt.Errorf("gemini API key is not configured")

// rate limiter for Gemini API calls (10 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(10, 5)

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

type GeminiStreamer struct {
	config GeminiConfig
	client *genai.Client
}

func NewGeminiStreamer(ctx context.Context, config GeminiConfig) (*GeminiStreamer, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if config.Model == "" {
		config.Model = defaultModel
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	if config.TopP == 0 {
		config.TopP = defaultTopP
	}

	if config.TopK == 0 {
		config.TopK = defaultTopK
	}

	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = defaultMaxOutputTokens
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiStreamer{
		config: config,
		client: client,
	}, nil
}

func (s *GeminiStreamer) Model() string {
	return s.config.Model
}

// streams generated text, forwarding each non-empty fragment to onChunk
func (s *GeminiStreamer) StreamText(ctx context.Context, req StreamRequest, onChunk func(string)) error {
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.config.Temperature),
		TopP:            genai.Ptr(s.config.TopP),
		TopK:            genai.Ptr(s.config.TopK),
		MaxOutputTokens: s.config.MaxOutputTokens,
	}

	if req.SystemInstruction != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	if req.EnableSearch {
		genConfig.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	contents := genai.Text(req.Prompt)

	for resp, err := range s.client.Models.GenerateContentStream(ctx, s.config.Model, contents, genConfig) {
		if err != nil {
			return fmt.Errorf("gemini stream error: %w", err)
		}

		fragment := resp.Text()
		if fragment == "" {
			continue
		}

		onChunk(fragment)
	}

	return nil
}

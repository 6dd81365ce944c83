package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripcraft/internal/models/request_models"
)

// GeminiGenerationClient implements GenerationClientInterface using
// Google's Gemini models.
type GeminiGenerationClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiGenerationClient(apiKey, model string, timeout time.Duration) (GenerationClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiGenerationClient) SuggestActivities(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
	prompt := fmt.Sprintf(
		"%s\n\nSuggest activities for a trip to %s from %s to %s based on these preferences: %s",
		ActivitySuggestionSystemPrompt,
		request.SelectedDestination.Name,
		request.TravelDates.StartDate,
		request.TravelDates.EndDate,
		mustMarshal(request.ActivityPreferences),
	)
	return c.generate(ctx, prompt)
}

func (c *GeminiGenerationClient) OptimizeItinerary(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
	prompt := fmt.Sprintf(
		"%s\n\nCreate an optimized day-by-day itinerary for: %s",
		ItineraryOptimizationSystemPrompt,
		mustMarshal(payload),
	)
	return c.generate(ctx, prompt)
}

func (c *GeminiGenerationClient) SuggestDestinations(ctx context.Context, preferences request_models.DestinationPreferences) (string, error) {
	prompt := fmt.Sprintf(
		"%s\n\nSuggest 3 to 5 destination recommendations based on the following preferences: %s",
		DestinationSystemPrompt,
		mustMarshal(preferences),
	)
	return c.generate(ctx, prompt)
}

func (c *GeminiGenerationClient) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so callers can parse without brace hunting.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(MaxGenerationTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tripcraft/internal/models/request_models"
)

type OpenAIGenerationClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGenerationClient(apiKey, model string, timeout time.Duration) GenerationClientInterface {
	if model == "" {
		model = DefaultGenerationModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIGenerationClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAIGenerationClient) SuggestActivities(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
	userPrompt := fmt.Sprintf(
		"Suggest activities for a trip to %s from %s to %s based on these preferences: %s",
		request.SelectedDestination.Name,
		request.TravelDates.StartDate,
		request.TravelDates.EndDate,
		mustMarshal(request.ActivityPreferences),
	)
	return c.complete(ctx, ActivitySuggestionSystemPrompt, userPrompt)
}

func (c *OpenAIGenerationClient) OptimizeItinerary(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
	userPrompt := fmt.Sprintf("Create an optimized day-by-day itinerary for: %s", mustMarshal(payload))
	return c.complete(ctx, ItineraryOptimizationSystemPrompt, userPrompt)
}

func (c *OpenAIGenerationClient) SuggestDestinations(ctx context.Context, preferences request_models.DestinationPreferences) (string, error) {
	userPrompt := fmt.Sprintf("Suggest 3 to 5 destination recommendations based on the following preferences: %s", mustMarshal(preferences))
	return c.complete(ctx, DestinationSystemPrompt, userPrompt)
}

func (c *OpenAIGenerationClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: DefaultGenerationTemperature,
		MaxTokens:   MaxGenerationTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func mustMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

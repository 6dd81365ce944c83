package utils

import (
	"context"

	"tripcraft/internal/models/request_models"
)

// GenerationClientInterface is the narrow contract to the external content
// generator. An empty string with a nil error means the generator produced
// no content; callers treat that the same as a transport failure. The
// returned text is opaque here: shape validation belongs to the caller.
type GenerationClientInterface interface {
	SuggestActivities(ctx context.Context, request request_models.QuestionnaireRequest) (string, error)
	OptimizeItinerary(ctx context.Context, payload request_models.OptimizationPayload) (string, error)
	SuggestDestinations(ctx context.Context, preferences request_models.DestinationPreferences) (string, error)
}

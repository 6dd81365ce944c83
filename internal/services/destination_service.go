package services

import (
	"context"
	"encoding/json"
	"log"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/utils"
)

type DestinationServiceInterface interface {
	GetRecommendations(ctx context.Context, request request_models.DestinationRequest) (*response_models.DestinationResponse, error)
}

type DestinationService struct {
	generationClient utils.GenerationClientInterface
}

func NewDestinationService(generationClient utils.GenerationClientInterface) DestinationServiceInterface {
	return &DestinationService{generationClient: generationClient}
}

func (s *DestinationService) GetRecommendations(ctx context.Context, request request_models.DestinationRequest) (*response_models.DestinationResponse, error) {

	if !validDestinationPreferences(request.Preferences) {
		return nil, utils.ErrInvalidInput
	}

	rawContent, err := s.generationClient.SuggestDestinations(ctx, request.Preferences)
	if err != nil {
		log.Printf("Destination suggestion failed: %v", err)
		return nil, utils.ErrGenerationUnavailable
	}
	if rawContent == "" {
		return nil, utils.ErrGenerationUnavailable
	}

	var response response_models.DestinationResponse
	if err := json.Unmarshal([]byte(rawContent), &response); err != nil {
		log.Printf("Destination suggestion content rejected: %v", err)
		return nil, utils.ErrInvalidGeneratedContent
	}
	if len(response.Recommendations) == 0 {
		return nil, utils.ErrInvalidGeneratedContent
	}

	return &response, nil
}

func validDestinationPreferences(preferences request_models.DestinationPreferences) bool {
	return preferences.Budget.Max > 0 &&
		preferences.TravelDates.StartDate != "" &&
		preferences.TravelDates.EndDate != "" &&
		preferences.GroupSize > 0 &&
		len(preferences.Interests) > 0
}

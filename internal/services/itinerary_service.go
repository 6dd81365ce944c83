package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/utils"
)

const (
	maxTripDays = 10
	dateLayout  = "2006-01-02"

	// Unparseable generator output at least this long is reported as
	// truncated rather than malformed; it is close to the generator's
	// output budget.
	truncationLengthHint = utils.MaxGenerationTokens * 3
)

type ItineraryServiceInterface interface {
	SubmitQuestionnaire(ctx context.Context, request request_models.QuestionnaireRequest) (*response_models.QuestionnaireResponse, error)
	GenerateItinerary(ctx context.Context, request request_models.GenerateRequest) (*response_models.GenerateResponse, error)
}

type ItineraryService struct {
	questionnaireRepo repositories.QuestionnaireRepository
	generationClient  utils.GenerationClientInterface
}

func NewItineraryService(
	questionnaireRepo repositories.QuestionnaireRepository,
	generationClient utils.GenerationClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		questionnaireRepo: questionnaireRepo,
		generationClient:  generationClient,
	}
}

// SubmitQuestionnaire runs phase one: generate candidate activities, then
// persist the questionnaire and its full activity set in one transaction.
// Nothing is persisted when generation fails or the content does not parse.
func (s *ItineraryService) SubmitQuestionnaire(ctx context.Context, request request_models.QuestionnaireRequest) (*response_models.QuestionnaireResponse, error) {

	startDate, err := time.Parse(dateLayout, request.TravelDates.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse(dateLayout, request.TravelDates.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	rawContent, err := s.generationClient.SuggestActivities(ctx, request)
	if err != nil {
		log.Printf("Activity suggestion failed: %v", err)
		return nil, utils.ErrGenerationUnavailable
	}
	if rawContent == "" {
		return nil, utils.ErrGenerationUnavailable
	}

	suggested, err := parseSuggestedActivities(rawContent)
	if err != nil {
		log.Printf("Activity suggestion content rejected: %v", err)
		return nil, utils.ErrInvalidGeneratedContent
	}

	questionnaire := db_models.Questionnaire{
		DestinationID:        request.SelectedDestination.ID,
		DestinationName:      request.SelectedDestination.Name,
		StartDate:            &startDate,
		EndDate:              &endDate,
		ReadyForOptimization: true,
		PriorityInterests:    request.ActivityPreferences.PriorityInterests,
		MustSeeAttractions:   request.ActivityPreferences.MustSeeAttractions,
	}

	activities := make([]db_models.Activity, 0, len(suggested))
	for _, item := range suggested {
		activities = append(activities, db_models.Activity{
			OriginalID:    item.ID,
			Name:          item.Name,
			Description:   item.Description,
			Category:      item.Category,
			DurationHours: item.DurationHours,
			Cost:          item.Cost,
			Priority:      item.Priority,
		})
	}

	if err := s.questionnaireRepo.ReplaceQuestionnaireActivities(ctx, &questionnaire, activities); err != nil {
		log.Printf("Failed to persist questionnaire: %v", err)
		return nil, utils.ErrPersistenceFailure
	}

	return &response_models.QuestionnaireResponse{
		QuestionnaireID: questionnaire.ID.String(),
		Destination: response_models.Destination{
			ID:   request.SelectedDestination.ID,
			Name: request.SelectedDestination.Name,
		},
		SuggestedActivities:  suggested,
		ReadyForOptimization: true,
	}, nil
}

// GenerateItinerary runs phase two. Each step is a hard precondition for
// the next; the questionnaire itself is never mutated, so the call may be
// repeated against the same ready questionnaire.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.GenerateRequest) (*response_models.GenerateResponse, error) {

	questionnaire, err := s.questionnaireRepo.GetQuestionnaireById(ctx, request.QuestionnaireID)
	if err != nil {
		log.Printf("Failed to load questionnaire %s: %v", request.QuestionnaireID, err)
		return nil, utils.ErrDatabaseError
	}
	if questionnaire == nil {
		return nil, utils.ErrQuestionnaireNotFound
	}

	if !questionnaire.ReadyForOptimization {
		return nil, utils.ErrQuestionnaireNotReady
	}

	tripLengthDays, err := tripLength(questionnaire.StartDate, questionnaire.EndDate)
	if err != nil {
		return nil, err
	}

	stored, err := s.questionnaireRepo.ListActivitiesByQuestionnaireId(ctx, request.QuestionnaireID)
	if err != nil {
		log.Printf("Failed to load activities for questionnaire %s: %v", request.QuestionnaireID, err)
		return nil, utils.ErrDatabaseError
	}
	if len(stored) == 0 {
		return nil, utils.ErrNoActivitiesFound
	}

	filtered := filterSelectedActivities(request.QuestionnaireID, stored, request.SelectedActivities)
	if len(filtered) == 0 {
		return nil, utils.ErrNoSelectedActivities
	}

	payload := buildOptimizationPayload(questionnaire, tripLengthDays, filtered, request.Preferences)

	rawContent, err := s.generationClient.OptimizeItinerary(ctx, payload)
	if err != nil {
		log.Printf("Itinerary optimization failed for questionnaire %s: %v", request.QuestionnaireID, err)
		return nil, utils.ErrGenerationUnavailable
	}
	if rawContent == "" {
		return nil, utils.ErrGenerationUnavailable
	}

	return parseGeneratedItinerary(rawContent)
}

func parseSuggestedActivities(rawContent string) ([]response_models.SuggestedActivity, error) {
	var generated struct {
		SuggestedActivities []response_models.SuggestedActivity `json:"suggested_activities"`
	}
	if err := json.Unmarshal([]byte(rawContent), &generated); err != nil {
		return nil, err
	}
	if len(generated.SuggestedActivities) == 0 {
		return nil, utils.ErrInvalidGeneratedContent
	}
	for i := range generated.SuggestedActivities {
		if generated.SuggestedActivities[i].ID == "" || generated.SuggestedActivities[i].Name == "" {
			return nil, utils.ErrInvalidGeneratedContent
		}
		if generated.SuggestedActivities[i].Priority == "" {
			generated.SuggestedActivities[i].Priority = "medium"
		}
	}
	return generated.SuggestedActivities, nil
}

func tripLength(startDate, endDate *time.Time) (int, error) {
	if startDate == nil || endDate == nil {
		return 0, utils.ErrMissingTravelWindow
	}
	days := int(endDate.Sub(*startDate).Hours()/24) + 1
	if days < 1 {
		return 0, utils.ErrTripTooShort
	}
	if days > maxTripDays {
		return 0, utils.ErrTripTooLong
	}
	return days, nil
}

// filterSelectedActivities keeps stored activities the client selected and
// overwrites their priority with the client-supplied value. Selected ids
// with no stored counterpart are logged and dropped, never an error.
func filterSelectedActivities(
	questionnaireId string,
	stored []db_models.Activity,
	selections []request_models.SelectedActivity,
) []request_models.PayloadActivity {

	selectedPriority := make(map[string]string, len(selections))
	for _, selection := range selections {
		selectedPriority[selection.ID] = selection.Priority
	}

	byOriginalID := make(map[string]bool, len(stored))
	filtered := make([]request_models.PayloadActivity, 0, len(selections))
	for _, activity := range stored {
		byOriginalID[activity.OriginalID] = true
		priority, selected := selectedPriority[activity.OriginalID]
		if !selected {
			continue
		}
		filtered = append(filtered, request_models.PayloadActivity{
			ID:            activity.OriginalID,
			Name:          activity.Name,
			Description:   activity.Description,
			Category:      activity.Category,
			DurationHours: activity.DurationHours,
			Cost:          activity.Cost,
			Priority:      priority,
		})
	}

	for _, selection := range selections {
		if !byOriginalID[selection.ID] {
			log.Printf("Dropping unknown selected activity %s for questionnaire %s", selection.ID, questionnaireId)
		}
	}

	return filtered
}

func buildOptimizationPayload(
	questionnaire *db_models.Questionnaire,
	tripLengthDays int,
	activities []request_models.PayloadActivity,
	preferences request_models.ItineraryPreferences,
) request_models.OptimizationPayload {

	priorityCounts := map[string]int{"low": 0, "medium": 0, "high": 0}
	categorySet := make(map[string]bool)
	var totalDuration, totalCost float64

	for _, activity := range activities {
		priorityCounts[activity.Priority]++
		if activity.Category != "" {
			categorySet[activity.Category] = true
		}
		totalDuration += activity.DurationHours
		totalCost += activity.Cost
	}

	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return request_models.OptimizationPayload{
		Destination: request_models.SelectedDestination{
			ID:   questionnaire.DestinationID,
			Name: questionnaire.DestinationName,
		},
		TravelDates: request_models.TravelDates{
			StartDate: questionnaire.StartDate.Format(dateLayout),
			EndDate:   questionnaire.EndDate.Format(dateLayout),
		},
		TripLengthDays: tripLengthDays,
		Activities:     activities,
		Preferences:    preferences,
		Summary: request_models.PayloadSummary{
			TotalActivities:    len(activities),
			PriorityCounts:     priorityCounts,
			Categories:         categories,
			TotalDurationHours: totalDuration,
			TotalCost:          totalCost,
		},
	}
}

func parseGeneratedItinerary(rawContent string) (*response_models.GenerateResponse, error) {
	var generated response_models.GenerateResponse
	if err := json.Unmarshal([]byte(rawContent), &generated); err != nil {
		if looksTruncated(rawContent) {
			return nil, utils.ErrTruncatedResponse
		}
		return nil, utils.ErrInvalidGeneratedContent
	}
	if generated.Itinerary == nil || generated.Summary == nil {
		return nil, utils.ErrInvalidGeneratedContent
	}
	return &generated, nil
}

func looksTruncated(rawContent string) bool {
	trimmed := strings.TrimSpace(rawContent)
	if json.Valid([]byte(trimmed)) {
		return false
	}
	if len(trimmed) >= truncationLengthHint {
		return true
	}
	return strings.HasPrefix(trimmed, "{") && !strings.HasSuffix(trimmed, "}")
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/request_models"
	"tripcraft/pkg/utils"
)

type mockQuestionnaireRepo struct {
	replaceFunc func(ctx context.Context, questionnaire *db_models.Questionnaire, activities []db_models.Activity) error
	getFunc     func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error)
	listFunc    func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error)

	replaceCalls int
}

func (m *mockQuestionnaireRepo) ReplaceQuestionnaireActivities(ctx context.Context, questionnaire *db_models.Questionnaire, activities []db_models.Activity) error {
	m.replaceCalls++
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, questionnaire, activities)
	}
	return nil
}

func (m *mockQuestionnaireRepo) GetQuestionnaireById(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, questionnaireId)
	}
	return nil, nil
}

func (m *mockQuestionnaireRepo) ListActivitiesByQuestionnaireId(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, questionnaireId)
	}
	return nil, nil
}

type mockGenerationClient struct {
	suggestFunc  func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error)
	optimizeFunc func(ctx context.Context, payload request_models.OptimizationPayload) (string, error)

	optimizeCalls    int
	lastPayload      request_models.OptimizationPayload
	capturedPayloads []request_models.OptimizationPayload
}

func (m *mockGenerationClient) SuggestActivities(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, request)
	}
	return "", nil
}

func (m *mockGenerationClient) OptimizeItinerary(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
	m.optimizeCalls++
	m.lastPayload = payload
	m.capturedPayloads = append(m.capturedPayloads, payload)
	if m.optimizeFunc != nil {
		return m.optimizeFunc(ctx, payload)
	}
	return "", nil
}

func (m *mockGenerationClient) SuggestDestinations(ctx context.Context, preferences request_models.DestinationPreferences) (string, error) {
	return "", nil
}

func barcelonaRequest() request_models.QuestionnaireRequest {
	return request_models.QuestionnaireRequest{
		SelectedDestination: request_models.SelectedDestination{ID: "dest_001", Name: "Barcelona, Spain"},
		TravelDates:         request_models.TravelDates{StartDate: "2024-07-15", EndDate: "2024-07-22"},
		ActivityPreferences: request_models.ActivityPreferences{
			Pace:                "moderate",
			DailyStartTime:      "09:00",
			DailyEndTime:        "22:00",
			MaxActivitiesPerDay: 4,
		},
	}
}

func suggestedActivitiesJSON(count int) string {
	items := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, fmt.Sprintf(
			`{"id":"act_%03d","name":"Activity %d","category":"cultural","duration_hours":2,"cost":25,"priority":"medium","description":"Stop %d"}`,
			i, i, i))
	}
	return `{"suggested_activities":[` + strings.Join(items, ",") + `]}`
}

func storedActivities(count int) []db_models.Activity {
	activities := make([]db_models.Activity, 0, count)
	for i := 1; i <= count; i++ {
		activities = append(activities, db_models.Activity{
			OriginalID:    fmt.Sprintf("act_%03d", i),
			Name:          fmt.Sprintf("Activity %d", i),
			Category:      "cultural",
			DurationHours: 2,
			Cost:          25,
			Priority:      "medium",
		})
	}
	return activities
}

func readyQuestionnaire() *db_models.Questionnaire {
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC)
	return &db_models.Questionnaire{
		DestinationID:        "dest_001",
		DestinationName:      "Barcelona, Spain",
		StartDate:            &start,
		EndDate:              &end,
		ReadyForOptimization: true,
	}
}

func validItineraryJSON() string {
	return `{
		"itinerary": {
			"destination": "Barcelona, Spain",
			"total_days": 8,
			"daily_schedules": [
				{"date": "2024-07-15", "day_number": 1, "theme": "Arrival",
				 "activities": [{"start_time": "14:00", "end_time": "16:00",
				                 "activity": {"name": "Activity 1", "type": "cultural", "notes": ""}}],
				 "daily_cost": 25, "walking_distance": "2 km"}
			]
		},
		"summary": {"total_cost": 25, "total_activities": 1, "optimization_score": 0.9}
	}`
}

func TestSubmitQuestionnaire_PersistsGeneratedActivities(t *testing.T) {
	var persisted *db_models.Questionnaire
	var persistedActivities []db_models.Activity

	repo := &mockQuestionnaireRepo{
		replaceFunc: func(ctx context.Context, questionnaire *db_models.Questionnaire, activities []db_models.Activity) error {
			persisted = questionnaire
			persistedActivities = activities
			return nil
		},
	}
	client := &mockGenerationClient{
		suggestFunc: func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
			return suggestedActivitiesJSON(10), nil
		},
	}
	service := NewItineraryService(repo, client)

	result, err := service.SubmitQuestionnaire(context.Background(), barcelonaRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.QuestionnaireID == "" {
		t.Fatalf("expected a questionnaire id")
	}
	if !result.ReadyForOptimization {
		t.Fatalf("expected ready_for_optimization true")
	}
	if len(result.SuggestedActivities) != 10 {
		t.Fatalf("expected 10 suggested activities, got %d", len(result.SuggestedActivities))
	}
	for _, activity := range result.SuggestedActivities {
		if activity.ID == "" {
			t.Fatalf("expected non-empty activity id")
		}
	}

	if persisted == nil || !persisted.ReadyForOptimization {
		t.Fatalf("expected questionnaire persisted with ready flag set")
	}
	if persisted.DestinationName != "Barcelona, Spain" {
		t.Fatalf("unexpected destination name: %q", persisted.DestinationName)
	}
	if len(persistedActivities) != 10 {
		t.Fatalf("expected 10 persisted activities, got %d", len(persistedActivities))
	}
	if persistedActivities[0].OriginalID != "act_001" {
		t.Fatalf("expected origin id preserved, got %q", persistedActivities[0].OriginalID)
	}
}

func TestSubmitQuestionnaire_GeneratorUnavailable(t *testing.T) {
	repo := &mockQuestionnaireRepo{}

	for name, suggest := range map[string]func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error){
		"transport error": func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
			return "", errors.New("connection refused")
		},
		"no content": func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
			return "", nil
		},
	} {
		client := &mockGenerationClient{suggestFunc: suggest}
		service := NewItineraryService(repo, client)

		_, err := service.SubmitQuestionnaire(context.Background(), barcelonaRequest())
		if !errors.Is(err, utils.ErrGenerationUnavailable) {
			t.Fatalf("%s: expected ErrGenerationUnavailable, got %v", name, err)
		}
	}

	if repo.replaceCalls != 0 {
		t.Fatalf("expected no persistence attempt, got %d", repo.replaceCalls)
	}
}

func TestSubmitQuestionnaire_InvalidContentNotPersisted(t *testing.T) {
	repo := &mockQuestionnaireRepo{}

	for name, content := range map[string]string{
		"not json":        "here are some great activities!",
		"empty list":      `{"suggested_activities":[]}`,
		"missing ids":     `{"suggested_activities":[{"name":"Sagrada Familia"}]}`,
		"wrong top level": `{"activities": []}`,
	} {
		client := &mockGenerationClient{
			suggestFunc: func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
				return content, nil
			},
		}
		service := NewItineraryService(repo, client)

		_, err := service.SubmitQuestionnaire(context.Background(), barcelonaRequest())
		if !errors.Is(err, utils.ErrInvalidGeneratedContent) {
			t.Fatalf("%s: expected ErrInvalidGeneratedContent, got %v", name, err)
		}
	}

	if repo.replaceCalls != 0 {
		t.Fatalf("expected no persistence attempt, got %d", repo.replaceCalls)
	}
}

func TestSubmitQuestionnaire_PersistenceFailure(t *testing.T) {
	repo := &mockQuestionnaireRepo{
		replaceFunc: func(ctx context.Context, questionnaire *db_models.Questionnaire, activities []db_models.Activity) error {
			return errors.New("connection reset")
		},
	}
	client := &mockGenerationClient{
		suggestFunc: func(ctx context.Context, request request_models.QuestionnaireRequest) (string, error) {
			return suggestedActivitiesJSON(3), nil
		},
	}
	service := NewItineraryService(repo, client)

	_, err := service.SubmitQuestionnaire(context.Background(), barcelonaRequest())
	if !errors.Is(err, utils.ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
}

func TestSubmitQuestionnaire_BadDates(t *testing.T) {
	service := NewItineraryService(&mockQuestionnaireRepo{}, &mockGenerationClient{})

	request := barcelonaRequest()
	request.TravelDates.StartDate = "July 15th"

	_, err := service.SubmitQuestionnaire(context.Background(), request)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateItinerary_FiltersAndOverridesPriority(t *testing.T) {
	repo := &mockQuestionnaireRepo{
		getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
			return readyQuestionnaire(), nil
		},
		listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
			return storedActivities(10), nil
		},
	}
	client := &mockGenerationClient{
		optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
			return validItineraryJSON(), nil
		},
	}
	service := NewItineraryService(repo, client)

	result, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
		QuestionnaireID:    "quest_001",
		SelectedActivities: []request_models.SelectedActivity{{ID: "act_001", Priority: "high"}},
		Preferences:        request_models.ItineraryPreferences{Pace: "moderate"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Itinerary == nil || result.Summary == nil {
		t.Fatalf("expected itinerary and summary")
	}

	payload := client.lastPayload
	if len(payload.Activities) != 1 {
		t.Fatalf("expected exactly one activity in payload, got %d", len(payload.Activities))
	}
	if payload.Activities[0].ID != "act_001" {
		t.Fatalf("expected act_001, got %q", payload.Activities[0].ID)
	}
	if payload.Activities[0].Priority != "high" {
		t.Fatalf("expected client priority to win, got %q", payload.Activities[0].Priority)
	}
	if payload.TripLengthDays != 8 {
		t.Fatalf("expected 8 trip days, got %d", payload.TripLengthDays)
	}
}

func TestGenerateItinerary_UnknownSelectionDropped(t *testing.T) {
	repo := &mockQuestionnaireRepo{
		getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
			return readyQuestionnaire(), nil
		},
		listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
			return storedActivities(3), nil
		},
	}
	client := &mockGenerationClient{
		optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
			return validItineraryJSON(), nil
		},
	}
	service := NewItineraryService(repo, client)

	_, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
		QuestionnaireID: "quest_001",
		SelectedActivities: []request_models.SelectedActivity{
			{ID: "act_002", Priority: "low"},
			{ID: "act_999", Priority: "high"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := client.lastPayload
	if len(payload.Activities) != 1 || payload.Activities[0].ID != "act_002" {
		t.Fatalf("expected only act_002 in payload, got %+v", payload.Activities)
	}
}

func TestGenerateItinerary_PayloadAggregates(t *testing.T) {
	stored := []db_models.Activity{
		{OriginalID: "act_001", Name: "Museum", Category: "cultural", DurationHours: 2, Cost: 20, Priority: "medium"},
		{OriginalID: "act_002", Name: "Hike", Category: "outdoor", DurationHours: 4, Cost: 0, Priority: "medium"},
		{OriginalID: "act_003", Name: "Tapas", Category: "food", DurationHours: 3, Cost: 65, Priority: "low"},
		{OriginalID: "act_004", Name: "Market", Category: "food", DurationHours: 1.5, Cost: 10, Priority: "high"},
	}
	repo := &mockQuestionnaireRepo{
		getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
			return readyQuestionnaire(), nil
		},
		listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
			return stored, nil
		},
	}
	client := &mockGenerationClient{
		optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
			return validItineraryJSON(), nil
		},
	}
	service := NewItineraryService(repo, client)

	_, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
		QuestionnaireID: "quest_001",
		SelectedActivities: []request_models.SelectedActivity{
			{ID: "act_001", Priority: "high"},
			{ID: "act_002", Priority: "medium"},
			{ID: "act_003", Priority: "high"},
			{ID: "act_004", Priority: "low"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := client.lastPayload.Summary
	if summary.TotalActivities != 4 {
		t.Fatalf("expected 4 activities, got %d", summary.TotalActivities)
	}
	if summary.PriorityCounts["high"] != 2 || summary.PriorityCounts["medium"] != 1 || summary.PriorityCounts["low"] != 1 {
		t.Fatalf("unexpected priority counts: %+v", summary.PriorityCounts)
	}
	wantCategories := []string{"cultural", "food", "outdoor"}
	if len(summary.Categories) != len(wantCategories) {
		t.Fatalf("unexpected categories: %v", summary.Categories)
	}
	for i, category := range wantCategories {
		if summary.Categories[i] != category {
			t.Fatalf("expected categories %v, got %v", wantCategories, summary.Categories)
		}
	}
	if summary.TotalDurationHours != 10.5 {
		t.Fatalf("expected 10.5 duration hours, got %v", summary.TotalDurationHours)
	}
	if summary.TotalCost != 95 {
		t.Fatalf("expected total cost 95, got %v", summary.TotalCost)
	}
}

func TestGenerateItinerary_PreconditionOrder(t *testing.T) {
	tenDaysEnd := time.Date(2024, 7, 24, 0, 0, 0, 0, time.UTC)
	elevenDaysEnd := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	beforeStart := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		get     func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error)
		list    func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error)
		wantErr error
	}{
		{
			name: "not found",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				return nil, nil
			},
			wantErr: utils.ErrQuestionnaireNotFound,
		},
		{
			name: "storage failure is not a policy answer",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				return nil, errors.New("connection reset")
			},
			wantErr: utils.ErrDatabaseError,
		},
		{
			name: "not ready",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				q := readyQuestionnaire()
				q.ReadyForOptimization = false
				return q, nil
			},
			wantErr: utils.ErrQuestionnaireNotReady,
		},
		{
			name: "missing window",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				q := readyQuestionnaire()
				q.EndDate = nil
				return q, nil
			},
			wantErr: utils.ErrMissingTravelWindow,
		},
		{
			name: "eleven days too long",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				q := readyQuestionnaire()
				q.StartDate = &start
				q.EndDate = &elevenDaysEnd
				return q, nil
			},
			wantErr: utils.ErrTripTooLong,
		},
		{
			name: "end before start too short",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				q := readyQuestionnaire()
				q.StartDate = &start
				q.EndDate = &beforeStart
				return q, nil
			},
			wantErr: utils.ErrTripTooShort,
		},
		{
			name: "no stored activities",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				q := readyQuestionnaire()
				q.StartDate = &start
				q.EndDate = &tenDaysEnd
				return q, nil
			},
			list: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
				return nil, nil
			},
			wantErr: utils.ErrNoActivitiesFound,
		},
		{
			name: "no selected match",
			get: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
				return readyQuestionnaire(), nil
			},
			list: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
				return storedActivities(3), nil
			},
			wantErr: utils.ErrNoSelectedActivities,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockQuestionnaireRepo{getFunc: tt.get, listFunc: tt.list}
			client := &mockGenerationClient{}
			service := NewItineraryService(repo, client)

			_, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
				QuestionnaireID:    "quest_001",
				SelectedActivities: []request_models.SelectedActivity{{ID: "act_999", Priority: "high"}},
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if client.optimizeCalls != 0 {
				t.Fatalf("generator must not be called when a precondition fails")
			}
		})
	}
}

func TestGenerateItinerary_TenDayTripAccepted(t *testing.T) {
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 24, 0, 0, 0, 0, time.UTC) // exactly 10 days

	repo := &mockQuestionnaireRepo{
		getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
			q := readyQuestionnaire()
			q.StartDate = &start
			q.EndDate = &end
			return q, nil
		},
		listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
			return storedActivities(3), nil
		},
	}
	client := &mockGenerationClient{
		optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
			return validItineraryJSON(), nil
		},
	}
	service := NewItineraryService(repo, client)

	_, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
		QuestionnaireID:    "quest_001",
		SelectedActivities: []request_models.SelectedActivity{{ID: "act_001", Priority: "medium"}},
	})
	if err != nil {
		t.Fatalf("expected 10-day trip accepted, got %v", err)
	}
	if client.lastPayload.TripLengthDays != 10 {
		t.Fatalf("expected 10 trip days, got %d", client.lastPayload.TripLengthDays)
	}
}

func TestGenerateItinerary_GeneratorFailures(t *testing.T) {
	truncated := strings.Repeat(`{"itinerary":{"daily_schedules":[{"date":"2024-07-15"`, 200)

	tests := []struct {
		name    string
		content string
		genErr  error
		wantErr error
	}{
		{name: "transport error", genErr: errors.New("timeout"), wantErr: utils.ErrGenerationUnavailable},
		{name: "no content", content: "", wantErr: utils.ErrGenerationUnavailable},
		{name: "cut off mid object", content: `{"itinerary": {"destination": "Barcelona", "daily_sch`, wantErr: utils.ErrTruncatedResponse},
		{name: "near output budget", content: truncated + "}", wantErr: utils.ErrTruncatedResponse},
		{name: "valid json wrong shape", content: `{"message": "here is your trip"}`, wantErr: utils.ErrInvalidGeneratedContent},
		{name: "plain prose", content: `Sounds like a great trip!`, wantErr: utils.ErrInvalidGeneratedContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockQuestionnaireRepo{
				getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
					return readyQuestionnaire(), nil
				},
				listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
					return storedActivities(3), nil
				},
			}
			client := &mockGenerationClient{
				optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
					return tt.content, tt.genErr
				},
			}
			service := NewItineraryService(repo, client)

			_, err := service.GenerateItinerary(context.Background(), request_models.GenerateRequest{
				QuestionnaireID:    "quest_001",
				SelectedActivities: []request_models.SelectedActivity{{ID: "act_001", Priority: "high"}},
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGenerateItinerary_RepeatableAgainstSameQuestionnaire(t *testing.T) {
	repo := &mockQuestionnaireRepo{
		getFunc: func(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {
			return readyQuestionnaire(), nil
		},
		listFunc: func(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {
			return storedActivities(5), nil
		},
	}
	client := &mockGenerationClient{
		optimizeFunc: func(ctx context.Context, payload request_models.OptimizationPayload) (string, error) {
			return validItineraryJSON(), nil
		},
	}
	service := NewItineraryService(repo, client)

	request := request_models.GenerateRequest{
		QuestionnaireID:    "quest_001",
		SelectedActivities: []request_models.SelectedActivity{{ID: "act_002", Priority: "high"}},
	}

	for i := 0; i < 2; i++ {
		if _, err := service.GenerateItinerary(context.Background(), request); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
	}

	if repo.replaceCalls != 0 {
		t.Fatalf("phase two must not write questionnaire state")
	}
	first, _ := json.Marshal(client.capturedPayloads[0])
	second, _ := json.Marshal(client.capturedPayloads[1])
	if string(first) != string(second) {
		t.Fatalf("expected identical payloads across repeated calls")
	}
}

func TestLooksTruncated(t *testing.T) {
	if looksTruncated(validItineraryJSON()) {
		t.Fatalf("valid json must never look truncated")
	}
	if !looksTruncated(`{"itinerary": {"dest`) {
		t.Fatalf("cut-off json should look truncated")
	}
}

package request_models

type SelectedActivity struct {
	ID       string `json:"id" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=low medium high"`
}

type ItineraryPreferences struct {
	Pace                string `json:"pace"`
	DailyStartTime      string `json:"daily_start_time"`
	DailyEndTime        string `json:"daily_end_time"`
	MaxActivitiesPerDay int    `json:"max_activities_per_day"`
}

type GenerateRequest struct {
	QuestionnaireID    string               `json:"questionnaire_id" binding:"required"`
	SelectedActivities []SelectedActivity   `json:"selected_activities" binding:"required"`
	Preferences        ItineraryPreferences `json:"preferences"`
}

// OptimizationPayload is the request handed to the content generator in
// phase two: the filtered, re-prioritized activity set plus derived
// aggregates so the generator never has to re-scan the raw list.
type OptimizationPayload struct {
	Destination    SelectedDestination  `json:"destination"`
	TravelDates    TravelDates          `json:"travel_dates"`
	TripLengthDays int                  `json:"trip_length_days"`
	Activities     []PayloadActivity    `json:"activities"`
	Preferences    ItineraryPreferences `json:"preferences"`
	Summary        PayloadSummary       `json:"summary"`
}

type PayloadActivity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	DurationHours float64 `json:"duration_hours"`
	Cost          float64 `json:"cost"`
	Priority      string  `json:"priority"`
}

type PayloadSummary struct {
	TotalActivities    int            `json:"total_activities"`
	PriorityCounts     map[string]int `json:"priority_counts"`
	Categories         []string       `json:"categories"`
	TotalDurationHours float64        `json:"total_duration_hours"`
	TotalCost          float64        `json:"total_cost"`
}

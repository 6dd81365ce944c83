package response_models

type ActivityDetails struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

type ScheduledActivity struct {
	StartTime string          `json:"start_time"` // "HH:MM"
	EndTime   string          `json:"end_time"`   // "HH:MM"
	Activity  ActivityDetails `json:"activity"`
}

type DailySchedule struct {
	Date            string              `json:"date"` // "YYYY-MM-DD"
	DayNumber       int                 `json:"day_number"`
	Theme           string              `json:"theme"`
	Activities      []ScheduledActivity `json:"activities"`
	DailyCost       float64             `json:"daily_cost"`
	WalkingDistance string              `json:"walking_distance"`
}

type Itinerary struct {
	Destination    string          `json:"destination"`
	TotalDays      int             `json:"total_days"`
	DailySchedules []DailySchedule `json:"daily_schedules"`
}

type ItinerarySummary struct {
	TotalCost         float64 `json:"total_cost"`
	TotalActivities   int     `json:"total_activities"`
	OptimizationScore float64 `json:"optimization_score"`
}

type GenerateResponse struct {
	Itinerary *Itinerary        `json:"itinerary,omitempty"`
	Summary   *ItinerarySummary `json:"summary,omitempty"`
}

package response_models

type Destination struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SuggestedActivity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	DurationHours float64 `json:"duration_hours"`
	Cost          float64 `json:"cost"`
	Priority      string  `json:"priority"`
	Description   string  `json:"description"`
}

type QuestionnaireResponse struct {
	QuestionnaireID      string              `json:"questionnaire_id"`
	Destination          Destination         `json:"destination"`
	SuggestedActivities  []SuggestedActivity `json:"suggested_activities"`
	ReadyForOptimization bool                `json:"ready_for_optimization"`
}

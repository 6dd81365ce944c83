package request_models

type SelectedDestination struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// TravelDates carries calendar dates formatted "2006-01-02".
type TravelDates struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type ActivityTypes struct {
	Cultural  string `json:"cultural"`
	Outdoor   string `json:"outdoor"`
	Food      string `json:"food"`
	Nightlife string `json:"nightlife"`
	Shopping  string `json:"shopping"`
}

type MealPreferences struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type ActivityPreferences struct {
	Pace                string          `json:"pace"`
	DailyStartTime      string          `json:"daily_start_time"`
	DailyEndTime        string          `json:"daily_end_time"`
	MaxActivitiesPerDay int             `json:"max_activities_per_day"`
	PriorityInterests   []string        `json:"priority_interests"`
	MustSeeAttractions  []string        `json:"must_see_attractions"`
	ActivityTypes       ActivityTypes   `json:"activity_types"`
	MealPreferences     MealPreferences `json:"meal_preferences"`
	Transportation      string          `json:"transportation"`
	AccommodationArea   string          `json:"accommodation_area"`
}

type QuestionnaireRequest struct {
	SelectedDestination SelectedDestination `json:"selected_destination" binding:"required"`
	TravelDates         TravelDates         `json:"travel_dates" binding:"required"`
	ActivityPreferences ActivityPreferences `json:"activity_preferences" binding:"required"`
}

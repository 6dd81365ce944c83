package request_models

type Budget struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type DestinationPreferences struct {
	Budget       Budget      `json:"budget"`
	TravelDates  TravelDates `json:"travel_dates"`
	GroupSize    int         `json:"group_size"`
	Interests    []string    `json:"interests"`
	TravelStyle  string      `json:"travel_style"`
	MustHaves    []string    `json:"must_haves"`
	DealBreakers []string    `json:"deal_breakers"`
}

type DestinationRequest struct {
	Preferences DestinationPreferences `json:"preferences" binding:"required"`
}

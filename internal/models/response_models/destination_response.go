package response_models

type Recommendation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	MatchScore     int      `json:"match_score"`
	EstimatedCost  int      `json:"estimated_cost"`
	Highlights     []string `json:"highlights"`
	WhyRecommended string   `json:"why_recommended"`
	ImageURL       string   `json:"image_url,omitempty"`
}

type DestinationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

package domain

type DestinationSuggestion struct {
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	FullName        string  `json:"full_name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	SuggestedSeason Season  `json:"suggested_season"`
	Description     string  `json:"description"`
}

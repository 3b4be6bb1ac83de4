package types

type FavoriteListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type FavoriteResponse struct {
	FavoriteID  uint64             `json:"favorite_id"`
	ItineraryID uint64             `json:"itinerary_id"`
	Itinerary   *ItineraryResponse `json:"itinerary,omitempty"`
}

package types

type CreateShareRequest struct {
	ItineraryID      uint64 `json:"itinerary_id" binding:"required"`
	SharedWithUserID string `json:"shared_with_user_id" binding:"required,uuid"`
	Permission       string `json:"permission" binding:"required,oneof=view edit"`
}

type UpdateShareRequest struct {
	Permission string `json:"permission" binding:"required,oneof=view edit"`
}

type ShareListQuery struct {
	ItineraryID uint64 `form:"itinerary_id"`
	Permission  string `form:"permission"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

type ShareResponse struct {
	ShareID          uint64        `json:"share_id"`
	ItineraryID      uint64        `json:"itinerary_id"`
	SharedWithUserID string        `json:"shared_with_user_id"`
	Permission       string        `json:"permission"`
	SharedWithUser   *UserResponse `json:"shared_with_user,omitempty"`
}

type SearchUsersQuery struct {
	Keyword string `form:"q" binding:"required,min=1"`
	Limit   int    `form:"limit"`
}

package types

// 日期与时间的传输格式
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

type CreateItineraryRequest struct {
	Title           string `json:"title" binding:"required,max=100"`
	Description     string `json:"description"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Budget          string `json:"budget"`
	DestinationCity string `json:"destination_city" binding:"required"`
	HotelID         uint64 `json:"hotel_id"`
}

type UpdateItineraryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Budget      *string `json:"budget"`
	HotelID     *uint64 `json:"hotel_id"`
	IsCompleted *bool   `json:"is_completed"`
}

type ItineraryListQuery struct {
	DestinationCity string `form:"destination_city"`
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

type InsertDayRequest struct {
	Date string `json:"date" binding:"required"`
}

type UpdateDayRequest struct {
	Date string `json:"date" binding:"required"`
}

type AddActivityRequest struct {
	PlaceID   uint64 `json:"place_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type UpdateActivityRequest struct {
	PlaceID   *uint64 `json:"place_id"`
	StartTime *string `json:"start_time"`
}

type ActivityResponse struct {
	ActivityID uint64         `json:"itinerary_activity_id"`
	DayID      uint64         `json:"day_id"`
	PlaceID    uint64         `json:"place_id"`
	StartTime  string         `json:"start_time"`
	Place      *PlaceResponse `json:"place,omitempty"`
}

type DayResponse struct {
	DayID       uint64             `json:"day_id"`
	ItineraryID uint64             `json:"itinerary_id"`
	DayNumber   int                `json:"day_number"`
	Date        string             `json:"date"`
	Activities  []ActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	ItineraryID     uint64         `json:"itinerary_id"`
	UserID          string         `json:"user_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	Budget          string         `json:"budget"`
	DestinationCity string         `json:"destination_city"`
	IsFavorite      bool           `json:"is_favorite"`
	IsCompleted     bool           `json:"is_completed"`
	HotelID         uint64         `json:"hotel_id"`
	Hotel           *PlaceResponse `json:"hotel,omitempty"`
	Owner           *UserResponse  `json:"owner,omitempty"`
	Days            []DayResponse  `json:"days,omitempty"`
	// 调用方对该行程的权限: owner / edit / view
	Capability string `json:"capability,omitempty"`
}

// AI 规划输入，结构由前端大模型侧生成
type PlannerActivity struct {
	PlaceID   uint64 `json:"place_id"`
	StartTime string `json:"start_time"`
	// 兼容历史客户端把 title 拼成 tile 的情况
	Title string `json:"title"`
	Tile  string `json:"tile"`
}

type PlannerDay struct {
	Date       string            `json:"date"`
	Activities []PlannerActivity `json:"activities"`
}

type CreateFromAIRequest struct {
	Title           string       `json:"title" binding:"required"`
	Description     string       `json:"description"`
	DestinationCity string       `json:"destination_city" binding:"required"`
	Budget          string       `json:"budget"`
	HotelID         uint64       `json:"hotel_id"`
	Days            []PlannerDay `json:"days" binding:"required,min=1"`
}

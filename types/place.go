package types

import "gorm.io/datatypes"

// 列表默认分页
const (
	DefaultPage  int = 1
	DefaultLimit int = 10
	MaxLimit     int = 100
)

type CreatePlaceRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	LocalName    string  `json:"local_name"`
	Description  string  `json:"description"`
	Type         string  `json:"type" binding:"required,oneof=RESTAURANT HOTEL ATTRACTION"`
	Address      string  `json:"address"`
	City         string  `json:"city" binding:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Rating       float64 `json:"rating"`
	PriceRange   string  `json:"price_range"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Website      string  `json:"website"`
	WebURL       string  `json:"web_url"`
	Image        string  `json:"image"`
	NumberReview int     `json:"number_review"`
}

type UpdatePlaceRequest struct {
	Name         *string  `json:"name"`
	LocalName    *string  `json:"local_name"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Rating       *float64 `json:"rating"`
	PriceRange   *string  `json:"price_range"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Website      *string  `json:"website"`
	WebURL       *string  `json:"web_url"`
	Image        *string  `json:"image"`
	NumberReview *int     `json:"number_review"`
}

type PlaceListQuery struct {
	City  string `form:"city"`
	Type  string `form:"type"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type PlacePhotoRequest struct {
	PhotoURL  string `json:"photo_url" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

type RestaurantDetailRequest struct {
	MealTypes []string `json:"meal_types"`
}

type AttractionDetailRequest struct {
	Subcategory []string `json:"subcategory"`
	Subtype     []string `json:"subtype"`
}

type PlacePhotoResponse struct {
	PhotoID   uint64 `json:"photo_id"`
	PhotoURL  string `json:"photo_url"`
	IsPrimary bool   `json:"is_primary"`
}

// PlaceResponse 地点 + 照片 + 类型化扩展
type PlaceResponse struct {
	PlaceID      uint64               `json:"place_id"`
	Name         string               `json:"name"`
	LocalName    string               `json:"local_name"`
	Description  string               `json:"description"`
	Type         string               `json:"type"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Rating       float64              `json:"rating"`
	PriceRange   string               `json:"price_range"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	Website      string               `json:"website"`
	WebURL       string               `json:"web_url"`
	Image        string               `json:"image"`
	NumberReview int                  `json:"number_review"`
	Photos       []PlacePhotoResponse `json:"photos"`
	MealTypes    datatypes.JSON       `json:"meal_types,omitempty"`
	Subcategory  datatypes.JSON       `json:"subcategory,omitempty"`
	Subtype      datatypes.JSON       `json:"subtype,omitempty"`
}

package models

import "time"

// Itinerary 行程聚合根
// 约束: start_date <= end_date 恒成立；增删天会调整 end_date
type Itinerary struct {
	ItineraryID     uint64    `gorm:"column:itinerary_id;primary_key;AUTO_INCREMENT" json:"itinerary_id"`
	UserID          string    `gorm:"column:user_id;type:char(36);not null;index:idx_user_id" json:"user_id"`
	Title           string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description     string    `gorm:"column:description;type:text" json:"description"`
	StartDate       time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate         time.Time `gorm:"column:end_date;type:date;not null" json:"end_date"`
	Budget          string    `gorm:"column:budget;type:varchar(50);not null;default:''" json:"budget"`
	DestinationCity string    `gorm:"column:destination_city;type:varchar(100);not null;index:idx_destination" json:"destination_city"`
	IsFavorite      bool      `gorm:"column:is_favorite;not null;default:false" json:"is_favorite"`
	IsCompleted     bool      `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	HotelID         uint64    `gorm:"column:hotel_id;not null;default:0" json:"hotel_id"`
	CreatedAt       time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (i Itinerary) TableName() string { return "itineraries" }

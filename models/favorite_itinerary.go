package models

import "time"

// FavoriteItinerary 收藏记录
// 唯一键: user_id + itinerary_id，重复收藏幂等
type FavoriteItinerary struct {
	FavoriteID  uint64    `gorm:"column:favorite_id;primary_key;AUTO_INCREMENT" json:"favorite_id"`
	UserID      string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_itinerary,priority:1" json:"user_id"`
	ItineraryID uint64    `gorm:"column:itinerary_id;not null;uniqueIndex:uk_user_itinerary,priority:2" json:"itinerary_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (f FavoriteItinerary) TableName() string { return "favorite_itineraries" }

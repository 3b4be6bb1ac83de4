package models

import "time"

// ItineraryActivity 一天中的一个活动
// start_time 格式 HH:MM:SS，同一天内唯一
type ItineraryActivity struct {
	ActivityID uint64    `gorm:"column:itinerary_activity_id;primary_key;AUTO_INCREMENT" json:"itinerary_activity_id"`
	DayID      uint64    `gorm:"column:day_id;not null;index:idx_day_id" json:"day_id"`
	PlaceID    uint64    `gorm:"column:place_id;not null" json:"place_id"`
	StartTime  string    `gorm:"column:start_time;type:time;not null" json:"start_time"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (a ItineraryActivity) TableName() string { return "itinerary_activities" }

package models

import "time"

// ItineraryDay 行程里的一天
// day_number 从 1 开始、同一行程内连续且唯一，date 不允许重复，
// 且按 day_number 排序与按 date 排序结果一致
type ItineraryDay struct {
	DayID       uint64    `gorm:"column:day_id;primary_key;AUTO_INCREMENT" json:"day_id"`
	ItineraryID uint64    `gorm:"column:itinerary_id;not null;index:idx_itinerary_id" json:"itinerary_id"`
	DayNumber   int       `gorm:"column:day_number;not null" json:"day_number"`
	Date        time.Time `gorm:"column:date;type:date;not null" json:"date"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (d ItineraryDay) TableName() string { return "itinerary_days" }

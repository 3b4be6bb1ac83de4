package models

import "time"

type PlacePhoto struct {
	PhotoID   uint64    `gorm:"column:photo_id;primary_key;AUTO_INCREMENT" json:"photo_id"`
	PlaceID   uint64    `gorm:"column:place_id;not null;index:idx_place_id" json:"place_id"`
	PhotoURL  string    `gorm:"column:photo_url;type:varchar(255);not null" json:"photo_url"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (p PlacePhoto) TableName() string { return "place_photos" }

package models

import (
	"time"

	"gorm.io/datatypes"
)

// RestaurantDetail 餐厅扩展信息，meal_types 存 JSON 数组
type RestaurantDetail struct {
	RestaurantDetailID uint64         `gorm:"column:restaurant_detail_id;primary_key;AUTO_INCREMENT" json:"restaurant_detail_id"`
	PlaceID            uint64         `gorm:"column:place_id;not null;uniqueIndex" json:"place_id"`
	MealTypes          datatypes.JSON `gorm:"column:meal_types" json:"meal_types"`
	CreatedAt          time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (r RestaurantDetail) TableName() string { return "restaurant_details" }

type HotelDetail struct {
	HotelDetailID uint64    `gorm:"column:hotel_detail_id;primary_key;AUTO_INCREMENT" json:"hotel_detail_id"`
	PlaceID       uint64    `gorm:"column:place_id;not null;uniqueIndex" json:"place_id"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (h HotelDetail) TableName() string { return "hotel_details" }

type AttractionDetail struct {
	AttractionDetailID uint64         `gorm:"column:attraction_detail_id;primary_key;AUTO_INCREMENT" json:"attraction_detail_id"`
	PlaceID            uint64         `gorm:"column:place_id;not null;uniqueIndex" json:"place_id"`
	Subcategory        datatypes.JSON `gorm:"column:subcategory" json:"subcategory,omitempty"`
	Subtype            datatypes.JSON `gorm:"column:subtype" json:"subtype,omitempty"`
	CreatedAt          time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (a AttractionDetail) TableName() string { return "attraction_details" }

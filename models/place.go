package models

import "time"

// 地点类型
const (
	PlaceTypeRestaurant = "RESTAURANT"
	PlaceTypeHotel      = "HOTEL"
	PlaceTypeAttraction = "ATTRACTION"
)

type Place struct {
	PlaceID      uint64    `gorm:"column:place_id;primary_key;AUTO_INCREMENT" json:"place_id"`
	Name         string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	LocalName    string    `gorm:"column:local_name;type:varchar(100);not null;default:''" json:"local_name"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Type         string    `gorm:"column:type;type:varchar(50);not null;index:idx_city_type,priority:2" json:"type"`
	Address      string    `gorm:"column:address;type:text" json:"address"`
	City         string    `gorm:"column:city;type:varchar(100);not null;index:idx_city_type,priority:1" json:"city"`
	Latitude     float64   `gorm:"column:latitude;not null" json:"latitude"`
	Longitude    float64   `gorm:"column:longitude;not null" json:"longitude"`
	Rating       float64   `gorm:"column:rating;not null;default:0" json:"rating"`
	PriceRange   string    `gorm:"column:price_range;type:varchar(20);not null;default:''" json:"price_range"`
	Phone        string    `gorm:"column:phone;type:varchar(30);not null;default:''" json:"phone"`
	Email        string    `gorm:"column:email;type:varchar(100);not null;default:''" json:"email"`
	Website      string    `gorm:"column:website;type:varchar(255);not null;default:''" json:"website"`
	WebURL       string    `gorm:"column:web_url;type:varchar(255);not null;default:''" json:"web_url"`
	Image        string    `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"`
	NumberReview int       `gorm:"column:number_review;not null;default:0" json:"number_review"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (p Place) TableName() string { return "places" }

package models

import "time"

// 分享权限
const (
	PermissionView = "view"
	PermissionEdit = "edit"
)

// ItineraryShare 行程分享记录
// 唯一键: itinerary_id + shared_with_user_id
type ItineraryShare struct {
	ShareID          uint64    `gorm:"column:share_id;primary_key;AUTO_INCREMENT" json:"share_id"`
	ItineraryID      uint64    `gorm:"column:itinerary_id;not null;uniqueIndex:uk_itinerary_user,priority:1" json:"itinerary_id"`
	SharedWithUserID string    `gorm:"column:shared_with_user_id;type:char(36);not null;uniqueIndex:uk_itinerary_user,priority:2" json:"shared_with_user_id"`
	Permission       string    `gorm:"column:permission;type:varchar(10);not null;default:view" json:"permission"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (s ItineraryShare) TableName() string { return "itinerary_shares" }

package models

import "time"

// FCMToken 推送 token
// 唯一键: user_id + fcm_token，登出置 is_active=false
type FCMToken struct {
	TokenID   uint64    `gorm:"column:token_id;primary_key;AUTO_INCREMENT" json:"token_id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_token,priority:1" json:"user_id"`
	FcmToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;uniqueIndex:uk_user_token,priority:2" json:"fcm_token"`
	Device    string    `gorm:"column:device;type:varchar(50);not null;default:''" json:"device"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (t FCMToken) TableName() string { return "fcm_tokens" }

package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Users struct {
	UserID           string         `gorm:"column:user_id;type:char(36);primary_key" json:"user_id"`
	Username         string         `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email            string         `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	Password         string         `gorm:"column:password;type:varchar(255);not null" json:"-"`
	FullName         string         `gorm:"column:full_name;type:varchar(100);not null;default:''" json:"full_name"`
	Role             string         `gorm:"column:role;type:varchar(20);not null;default:user" json:"role"`
	ProfilePicture   string         `gorm:"column:profile_picture;type:varchar(255);not null;default:''" json:"profile_picture"`
	Preferences      datatypes.JSON `gorm:"column:preferences" json:"preferences,omitempty"`
	BudgetPreference int            `gorm:"column:budget_preference;not null;default:0" json:"budget_preference"`
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (u Users) TableName() string { return "users" }

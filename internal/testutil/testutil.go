package testutil

import (
	"Tripper/models"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试一个独立的内存库
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 用测试名隔离，避免连接池里多个连接各开一个空库
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Users{},
		&models.Place{},
		&models.PlacePhoto{},
		&models.RestaurantDetail{},
		&models.HotelDetail{},
		&models.AttractionDetail{},
		&models.Itinerary{},
		&models.ItineraryDay{},
		&models.ItineraryActivity{},
		&models.ItineraryShare{},
		&models.FavoriteItinerary{},
		&models.FCMToken{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *models.Users {
	t.Helper()

	now := time.Now()
	user := &models.Users{
		UserID:    uuid.NewString(),
		Username:  username,
		Email:     username + "@example.com",
		Password:  "x",
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func CreatePlace(t *testing.T, db *gorm.DB, name, city, placeType string) *models.Place {
	t.Helper()

	now := time.Now()
	place := &models.Place{
		Name:      name,
		Type:      placeType,
		City:      city,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(place).Error; err != nil {
		t.Fatalf("create place: %v", err)
	}
	return place
}

func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

package service

import (
	"Tripper/dao"
	"Tripper/internal/testutil"
	"Tripper/models"
	"context"
	"testing"
	"time"
)

func TestDeleteMeCascades(t *testing.T) {
	db := testutil.NewDB(t)
	svc := &UserService{
		UserDAO:      dao.NewUsers(db),
		ItineraryDAO: dao.NewItineraryDAO(db),
	}
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	mine := seedItinerary(t, db, alice.UserID, "2026-01-01", "2026-01-02")
	theirs := seedItinerary(t, db, bob.UserID, "2026-02-01")

	now := time.Now()
	// 我的行程分享给 bob，bob 的行程分享给我
	for _, share := range []*models.ItineraryShare{
		{ItineraryID: mine.ItineraryID, SharedWithUserID: bob.UserID, Permission: models.PermissionView, CreatedAt: now, UpdatedAt: now},
		{ItineraryID: theirs.ItineraryID, SharedWithUserID: alice.UserID, Permission: models.PermissionEdit, CreatedAt: now, UpdatedAt: now},
	} {
		if err := db.Create(share).Error; err != nil {
			t.Fatalf("seed share: %v", err)
		}
	}
	// bob 收藏我的行程，我收藏 bob 的
	for _, fav := range []*models.FavoriteItinerary{
		{UserID: bob.UserID, ItineraryID: mine.ItineraryID, CreatedAt: now},
		{UserID: alice.UserID, ItineraryID: theirs.ItineraryID, CreatedAt: now},
	} {
		if err := db.Create(fav).Error; err != nil {
			t.Fatalf("seed favorite: %v", err)
		}
	}
	token := &models.FCMToken{UserID: alice.UserID, FcmToken: "tok-1", IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(token).Error; err != nil {
		t.Fatalf("seed fcm token: %v", err)
	}

	if err := svc.DeleteMe(context.Background(), alice.UserID); err != nil {
		t.Fatalf("delete me: %v", err)
	}

	count := func(model any, query string, args ...any) int64 {
		t.Helper()
		var n int64
		if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		return n
	}

	if n := count(&models.Users{}, "user_id = ?", alice.UserID); n != 0 {
		t.Error("user row survived")
	}
	if n := count(&models.Itinerary{}, "user_id = ?", alice.UserID); n != 0 {
		t.Error("owned itineraries survived")
	}
	if n := count(&models.ItineraryDay{}, "itinerary_id = ?", mine.ItineraryID); n != 0 {
		t.Error("days of owned itinerary survived")
	}
	if n := count(&models.ItineraryShare{}, "itinerary_id = ?", mine.ItineraryID); n != 0 {
		t.Error("shares of owned itinerary survived")
	}
	if n := count(&models.ItineraryShare{}, "shared_with_user_id = ?", alice.UserID); n != 0 {
		t.Error("received shares survived")
	}
	if n := count(&models.FavoriteItinerary{}, "user_id = ? OR itinerary_id = ?", alice.UserID, mine.ItineraryID); n != 0 {
		t.Error("favorites survived")
	}
	if n := count(&models.FCMToken{}, "user_id = ?", alice.UserID); n != 0 {
		t.Error("fcm tokens survived")
	}

	// bob 的数据不受影响
	if n := count(&models.Itinerary{}, "itinerary_id = ?", theirs.ItineraryID); n != 1 {
		t.Error("bob's itinerary was deleted")
	}
	if n := count(&models.Users{}, "user_id = ?", bob.UserID); n != 1 {
		t.Error("bob was deleted")
	}
}

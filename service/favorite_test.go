package service

import (
	"Tripper/dao"
	"Tripper/internal/testutil"
	"Tripper/models"
	"Tripper/types"
	"context"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newFavoriteService(t *testing.T, db *gorm.DB) *FavoriteService {
	t.Helper()

	itineraryDAO := dao.NewItineraryDAO(db)
	return &FavoriteService{
		FavoriteDAO:  dao.NewFavoriteItineraryDAO(db),
		ItineraryDAO: itineraryDAO,
		Access: &AccessService{
			ItineraryDAO: itineraryDAO,
			ShareDAO:     dao.NewItineraryShareDAO(db),
		},
	}
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newFavoriteService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	first, err := svc.Add(context.Background(), owner.UserID, it.ItineraryID)
	if err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	second, err := svc.Add(context.Background(), owner.UserID, it.ItineraryID)
	if err != nil {
		t.Fatalf("re-add favorite: %v", err)
	}
	if first.FavoriteID != second.FavoriteID {
		t.Errorf("expected same favorite record, got %d and %d", first.FavoriteID, second.FavoriteID)
	}

	var count int64
	db.Model(&models.FavoriteItinerary{}).
		Where("user_id = ? AND itinerary_id = ?", owner.UserID, it.ItineraryID).
		Count(&count)
	if count != 1 {
		t.Errorf("expected 1 favorite row, got %d", count)
	}
}

func TestFavoriteSyncsOwnerFlag(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newFavoriteService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	if _, err := svc.Add(context.Background(), owner.UserID, it.ItineraryID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	var reloaded models.Itinerary
	if err := db.First(&reloaded, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.IsFavorite {
		t.Error("expected is_favorite true after owner favorites own itinerary")
	}

	if err := svc.Remove(context.Background(), owner.UserID, it.ItineraryID); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := db.First(&reloaded, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsFavorite {
		t.Error("expected is_favorite false after removal")
	}
}

func TestFavoriteRequiresAccess(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newFavoriteService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	stranger := testutil.CreateUser(t, db, "bob")
	viewer := testutil.CreateUser(t, db, "carol")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	_, err := svc.Add(context.Background(), stranger.UserID, it.ItineraryID)
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("stranger: expected 403, got %d", code)
	}

	now := time.Now()
	share := &models.ItineraryShare{
		ItineraryID:      it.ItineraryID,
		SharedWithUserID: viewer.UserID,
		Permission:       models.PermissionView,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := db.Create(share).Error; err != nil {
		t.Fatalf("create share: %v", err)
	}

	if _, err := svc.Add(context.Background(), viewer.UserID, it.ItineraryID); err != nil {
		t.Fatalf("viewer should be able to favorite: %v", err)
	}

	// 别人收藏不影响所有者的 is_favorite 标记
	var reloaded models.Itinerary
	if err := db.First(&reloaded, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsFavorite {
		t.Error("viewer favorite must not flip owner flag")
	}
}

func TestRemoveMissingFavorite(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newFavoriteService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	err := svc.Remove(context.Background(), owner.UserID, it.ItineraryID)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestFavoriteSchemaRejectsDuplicateRow(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	row := func() *models.FavoriteItinerary {
		return &models.FavoriteItinerary{
			UserID:      owner.UserID,
			ItineraryID: it.ItineraryID,
			CreatedAt:   time.Now(),
		}
	}
	if err := db.Create(row()).Error; err != nil {
		t.Fatalf("first favorite row: %v", err)
	}
	if err := db.Create(row()).Error; err == nil {
		t.Fatal("schema accepted a second favorite row for the same (user, itinerary) pair")
	}
}

func TestListMineFavorites(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newFavoriteService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	first := seedItinerary(t, db, owner.UserID, "2026-01-01")
	second := seedItinerary(t, db, owner.UserID, "2026-02-01")

	for _, id := range []uint64{first.ItineraryID, second.ItineraryID} {
		if _, err := svc.Add(context.Background(), owner.UserID, id); err != nil {
			t.Fatalf("add favorite: %v", err)
		}
	}

	items, page, err := svc.ListMine(context.Background(), owner.UserID, &types.FavoriteListQuery{})
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(items))
	}
	if page.TotalPages != 1 {
		t.Errorf("expected a single page, got %d", page.TotalPages)
	}
	for _, item := range items {
		if item.Itinerary == nil {
			t.Errorf("favorite %d missing itinerary summary", item.FavoriteID)
		}
	}
}

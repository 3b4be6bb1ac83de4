package service

import (
	"Tripper/internal/testutil"
	"Tripper/models"
	"context"
	"testing"
)

func TestGetByTypeMatchesType(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlaceService(db)
	restaurant := testutil.CreatePlace(t, db, "一兰拉面", "Tokyo", models.PlaceTypeRestaurant)

	got, err := svc.GetByType(context.Background(), restaurant.PlaceID, models.PlaceTypeRestaurant)
	if err != nil {
		t.Fatalf("get restaurant: %v", err)
	}
	if got.PlaceID != restaurant.PlaceID || got.Type != models.PlaceTypeRestaurant {
		t.Fatalf("got %+v", got)
	}
}

func TestGetByTypeRejectsMismatchAndMissing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlaceService(db)
	hotel := testutil.CreatePlace(t, db, "东横INN", "Tokyo", models.PlaceTypeHotel)

	// 酒店从餐厅端点取不到
	_, err := svc.GetByType(context.Background(), hotel.PlaceID, models.PlaceTypeRestaurant)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("type mismatch: expected 404, got %d", code)
	}

	_, err = svc.GetByType(context.Background(), 9999, models.PlaceTypeHotel)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("missing place: expected 404, got %d", code)
	}
}

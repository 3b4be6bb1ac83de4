package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/internal/testutil"
	"Tripper/models"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newItineraryService(t *testing.T, db *gorm.DB, autoExtend bool) *ItineraryService {
	t.Helper()

	itineraryDAO := dao.NewItineraryDAO(db)
	access := &AccessService{
		ItineraryDAO: itineraryDAO,
		ShareDAO:     dao.NewItineraryShareDAO(db),
	}
	return &ItineraryService{
		ItineraryDAO: itineraryDAO,
		DayDAO:       dao.NewItineraryDayDAO(db),
		ActivityDAO:  dao.NewItineraryActivityDAO(db),
		Place:        newPlaceService(db),
		Access:       access,
		Conf: &config.Config{
			Itinerary: &config.ItineraryConfig{AutoExtendDates: autoExtend},
		},
	}
}

func newPlaceService(db *gorm.DB) *PlaceService {
	return &PlaceService{
		PlaceDAO:      dao.NewPlaceDAO(db),
		PhotoDAO:      dao.NewPlacePhotoDAO(db),
		RestaurantDAO: dao.NewRestaurantDetailDAO(db),
		HotelDAO:      dao.NewHotelDetailDAO(db),
		AttractionDAO: dao.NewAttractionDetailDAO(db),
	}
}

// seedItinerary 直接落库一条行程，天的日期由 dates 给定
func seedItinerary(t *testing.T, db *gorm.DB, userID string, dates ...string) *models.Itinerary {
	t.Helper()

	if len(dates) == 0 {
		t.Fatal("seedItinerary needs at least one date")
	}

	now := time.Now()
	it := &models.Itinerary{
		UserID:          userID,
		Title:           "东京五日游",
		StartDate:       testutil.Date(t, dates[0]),
		EndDate:         testutil.Date(t, dates[len(dates)-1]),
		DestinationCity: "Tokyo",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("create itinerary: %v", err)
	}

	for i, d := range dates {
		day := &models.ItineraryDay{
			ItineraryID: it.ItineraryID,
			DayNumber:   i + 1,
			Date:        testutil.Date(t, d),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := db.Create(day).Error; err != nil {
			t.Fatalf("create day: %v", err)
		}
	}
	return it
}

func bizCode(t *testing.T, err error) int {
	t.Helper()

	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected biz error, got %v", err)
	}
	return be.Code
}

func assertDays(t *testing.T, db *gorm.DB, itineraryID uint64, dates ...string) {
	t.Helper()

	var days []*models.ItineraryDay
	if err := db.Where("itinerary_id = ?", itineraryID).Order("day_number").Find(&days).Error; err != nil {
		t.Fatalf("load days: %v", err)
	}
	if len(days) != len(dates) {
		t.Fatalf("expected %d days, got %d", len(dates), len(days))
	}
	for i, d := range days {
		if d.DayNumber != i+1 {
			t.Errorf("day %d: day_number = %d, want %d", i, d.DayNumber, i+1)
		}
		if got := d.Date.Format(types.DateLayout); got != dates[i] {
			t.Errorf("day %d: date = %s, want %s", i, got, dates[i])
		}
	}
}

func TestCreateItineraryBuildsDays(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")

	resp, err := svc.Create(context.Background(), owner.UserID, &types.CreateItineraryRequest{
		Title:           "大阪三日游",
		StartDate:       "2026-01-01",
		EndDate:         "2026-01-03",
		DestinationCity: "Osaka",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(resp.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(resp.Days))
	}
	assertDays(t, db, resp.ItineraryID, "2026-01-01", "2026-01-02", "2026-01-03")
}

func TestCreateItineraryRejectsReversedDates(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")

	_, err := svc.Create(context.Background(), owner.UserID, &types.CreateItineraryRequest{
		Title:           "x",
		StartDate:       "2026-01-03",
		EndDate:         "2026-01-01",
		DestinationCity: "Osaka",
	})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestInsertDayBetween(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-03")

	day, err := svc.InsertDay(context.Background(), owner.UserID, it.ItineraryID,
		&types.InsertDayRequest{Date: "2026-01-02"})
	if err != nil {
		t.Fatalf("insert day: %v", err)
	}
	if day.DayNumber != 2 {
		t.Errorf("new day_number = %d, want 2", day.DayNumber)
	}
	assertDays(t, db, it.ItineraryID, "2026-01-01", "2026-01-02", "2026-01-03")
}

func TestInsertDayDuplicateDate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-02")

	_, err := svc.InsertDay(context.Background(), owner.UserID, it.ItineraryID,
		&types.InsertDayRequest{Date: "2026-01-02"})
	if code := bizCode(t, err); code != 409 {
		t.Fatalf("expected 409, got %d", code)
	}
}

func TestInsertDayBeforeStart(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-02", "2026-01-03")

	_, err := svc.InsertDay(context.Background(), owner.UserID, it.ItineraryID,
		&types.InsertDayRequest{Date: "2026-01-01"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestInsertDayAfterEndExtendsWindow(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-02")

	day, err := svc.InsertDay(context.Background(), owner.UserID, it.ItineraryID,
		&types.InsertDayRequest{Date: "2026-01-05"})
	if err != nil {
		t.Fatalf("insert day: %v", err)
	}
	if day.DayNumber != 3 {
		t.Errorf("new day_number = %d, want 3", day.DayNumber)
	}

	var updated models.Itinerary
	if err := db.First(&updated, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload itinerary: %v", err)
	}
	if got := updated.EndDate.Format(types.DateLayout); got != "2026-01-05" {
		t.Errorf("end_date = %s, want 2026-01-05", got)
	}
}

func TestInsertDayAfterEndRejectedWhenExtendDisabled(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, false)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-02")

	_, err := svc.InsertDay(context.Background(), owner.UserID, it.ItineraryID,
		&types.InsertDayRequest{Date: "2026-01-05"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestDeleteDayRenumbersAndRecomputesDates(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-02", "2026-01-03")

	var middle models.ItineraryDay
	if err := db.Where("itinerary_id = ? AND day_number = 2", it.ItineraryID).First(&middle).Error; err != nil {
		t.Fatalf("load middle day: %v", err)
	}

	if err := svc.DeleteDay(context.Background(), owner.UserID, it.ItineraryID, middle.DayID); err != nil {
		t.Fatalf("delete day: %v", err)
	}

	// 剩余两天从 start_date 起连续编号
	assertDays(t, db, it.ItineraryID, "2026-01-01", "2026-01-02")

	var updated models.Itinerary
	if err := db.First(&updated, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload itinerary: %v", err)
	}
	if got := updated.EndDate.Format(types.DateLayout); got != "2026-01-02" {
		t.Errorf("end_date = %s, want 2026-01-02", got)
	}
}

func TestDeleteLastDayKeepsStartDate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	var only models.ItineraryDay
	if err := db.Where("itinerary_id = ?", it.ItineraryID).First(&only).Error; err != nil {
		t.Fatalf("load day: %v", err)
	}

	if err := svc.DeleteDay(context.Background(), owner.UserID, it.ItineraryID, only.DayID); err != nil {
		t.Fatalf("delete day: %v", err)
	}

	var updated models.Itinerary
	if err := db.First(&updated, it.ItineraryID).Error; err != nil {
		t.Fatalf("reload itinerary: %v", err)
	}
	if got := updated.EndDate.Format(types.DateLayout); got != "2026-01-01" {
		t.Errorf("end_date = %s, want 2026-01-01", got)
	}
}

func TestDeleteDayRemovesItsActivities(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-02")
	place := testutil.CreatePlace(t, db, "浅草寺", "Tokyo", models.PlaceTypeAttraction)

	var first models.ItineraryDay
	if err := db.Where("itinerary_id = ? AND day_number = 1", it.ItineraryID).First(&first).Error; err != nil {
		t.Fatalf("load day: %v", err)
	}

	_, err := svc.AddActivity(context.Background(), owner.UserID, it.ItineraryID, first.DayID,
		&types.AddActivityRequest{PlaceID: place.PlaceID, StartTime: "09:00"})
	if err != nil {
		t.Fatalf("add activity: %v", err)
	}

	if err := svc.DeleteDay(context.Background(), owner.UserID, it.ItineraryID, first.DayID); err != nil {
		t.Fatalf("delete day: %v", err)
	}

	var count int64
	db.Model(&models.ItineraryActivity{}).Where("day_id = ?", first.DayID).Count(&count)
	if count != 0 {
		t.Errorf("expected activities removed with day, got %d left", count)
	}
}

func TestActivityStartTimeConflict(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")
	place := testutil.CreatePlace(t, db, "一兰拉面", "Tokyo", models.PlaceTypeRestaurant)

	var day models.ItineraryDay
	if err := db.Where("itinerary_id = ?", it.ItineraryID).First(&day).Error; err != nil {
		t.Fatalf("load day: %v", err)
	}

	first, err := svc.AddActivity(context.Background(), owner.UserID, it.ItineraryID, day.DayID,
		&types.AddActivityRequest{PlaceID: place.PlaceID, StartTime: "12:00"})
	if err != nil {
		t.Fatalf("add activity: %v", err)
	}
	if first.StartTime != "12:00:00" {
		t.Errorf("start_time = %s, want 12:00:00", first.StartTime)
	}

	// HH:MM 和 HH:MM:SS 视为同一时间
	_, err = svc.AddActivity(context.Background(), owner.UserID, it.ItineraryID, day.DayID,
		&types.AddActivityRequest{PlaceID: place.PlaceID, StartTime: "12:00:00"})
	if code := bizCode(t, err); code != 409 {
		t.Fatalf("expected 409, got %d", code)
	}

	// 更新成已占用的时间同样冲突
	second, err := svc.AddActivity(context.Background(), owner.UserID, it.ItineraryID, day.DayID,
		&types.AddActivityRequest{PlaceID: place.PlaceID, StartTime: "13:00"})
	if err != nil {
		t.Fatalf("add second activity: %v", err)
	}
	noon := "12:00"
	err = svc.UpdateActivity(context.Background(), owner.UserID, it.ItineraryID, second.ActivityID,
		&types.UpdateActivityRequest{StartTime: &noon})
	if code := bizCode(t, err); code != 409 {
		t.Fatalf("expected 409, got %d", code)
	}
}

func TestDayMutationRequiresEditShare(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	viewer := testutil.CreateUser(t, db, "bob")
	editor := testutil.CreateUser(t, db, "carol")
	stranger := testutil.CreateUser(t, db, "dave")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01", "2026-01-03")

	now := time.Now()
	shares := []models.ItineraryShare{
		{ItineraryID: it.ItineraryID, SharedWithUserID: viewer.UserID, Permission: models.PermissionView, CreatedAt: now, UpdatedAt: now},
		{ItineraryID: it.ItineraryID, SharedWithUserID: editor.UserID, Permission: models.PermissionEdit, CreatedAt: now, UpdatedAt: now},
	}
	for i := range shares {
		if err := db.Create(&shares[i]).Error; err != nil {
			t.Fatalf("create share: %v", err)
		}
	}

	req := &types.InsertDayRequest{Date: "2026-01-02"}

	_, err := svc.InsertDay(context.Background(), stranger.UserID, it.ItineraryID, req)
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("stranger: expected 403, got %d", code)
	}

	_, err = svc.InsertDay(context.Background(), viewer.UserID, it.ItineraryID, req)
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("viewer: expected 403, got %d", code)
	}

	if _, err := svc.InsertDay(context.Background(), editor.UserID, it.ItineraryID, req); err != nil {
		t.Fatalf("editor should be allowed: %v", err)
	}
}

func TestGetRequiresAccess(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newItineraryService(t, db, true)
	owner := testutil.CreateUser(t, db, "alice")
	stranger := testutil.CreateUser(t, db, "bob")
	it := seedItinerary(t, db, owner.UserID, "2026-01-01")

	_, err := svc.Get(context.Background(), stranger.UserID, it.ItineraryID)
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("expected 403, got %d", code)
	}

	resp, err := svc.Get(context.Background(), owner.UserID, it.ItineraryID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if resp.Capability != CapabilityOwner {
		t.Errorf("capability = %s, want %s", resp.Capability, CapabilityOwner)
	}
}

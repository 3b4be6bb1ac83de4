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

func newPlannerService(t *testing.T, db *gorm.DB) *PlannerService {
	t.Helper()

	itinerary := newItineraryService(t, db, true)
	return &PlannerService{
		ItineraryDAO: itinerary.ItineraryDAO,
		DayDAO:       itinerary.DayDAO,
		ActivityDAO:  itinerary.ActivityDAO,
		PlaceDAO:     dao.NewPlaceDAO(db),
		Itinerary:    itinerary,
	}
}

func TestCreateFromAIAssignsDefaultTimes(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlannerService(t, db)
	owner := testutil.CreateUser(t, db, "alice")

	places := make([]*models.Place, 7)
	for i := range places {
		places[i] = testutil.CreatePlace(t, db, "spot", "Tokyo", models.PlaceTypeAttraction)
	}

	// 7 个无时间的活动: 前 6 个走默认梯子，第 7 个落最后一档并顺延一分钟
	activities := make([]types.PlannerActivity, 0, len(places))
	for _, p := range places {
		activities = append(activities, types.PlannerActivity{PlaceID: p.PlaceID})
	}

	resp, err := svc.CreateFromAI(context.Background(), owner.UserID, &types.CreateFromAIRequest{
		Title:           "东京暴走日",
		DestinationCity: "Tokyo",
		Days: []types.PlannerDay{
			{Date: "2026-03-01", Activities: activities},
		},
	})
	if err != nil {
		t.Fatalf("create from ai: %v", err)
	}
	if len(resp.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(resp.Days))
	}

	got := make([]string, 0, len(resp.Days[0].Activities))
	for _, a := range resp.Days[0].Activities {
		got = append(got, a.StartTime)
	}
	want := []string{"07:30:00", "08:30:00", "11:30:00", "14:00:00", "17:00:00", "20:00:00", "20:01:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("activity %d: start_time = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCreateFromAIKeepsExplicitTimes(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlannerService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	place := testutil.CreatePlace(t, db, "一兰拉面", "Tokyo", models.PlaceTypeRestaurant)

	resp, err := svc.CreateFromAI(context.Background(), owner.UserID, &types.CreateFromAIRequest{
		Title:           "吃面",
		DestinationCity: "Tokyo",
		Days: []types.PlannerDay{
			{Date: "2026-03-01", Activities: []types.PlannerActivity{
				{PlaceID: place.PlaceID, StartTime: "12:30"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("create from ai: %v", err)
	}
	if got := resp.Days[0].Activities[0].StartTime; got != "12:30:00" {
		t.Errorf("start_time = %s, want 12:30:00", got)
	}
}

func TestCreateFromAISkipsUnknownPlaces(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlannerService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	place := testutil.CreatePlace(t, db, "浅草寺", "Tokyo", models.PlaceTypeAttraction)

	resp, err := svc.CreateFromAI(context.Background(), owner.UserID, &types.CreateFromAIRequest{
		Title:           "残缺草稿",
		DestinationCity: "Tokyo",
		Days: []types.PlannerDay{
			{Date: "2026-03-01", Activities: []types.PlannerActivity{
				{PlaceID: 999999, StartTime: "09:00"},
				{PlaceID: place.PlaceID, StartTime: "10:00"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("create from ai: %v", err)
	}
	if len(resp.Days[0].Activities) != 1 {
		t.Fatalf("expected unknown place skipped, got %d activities", len(resp.Days[0].Activities))
	}
	if resp.Days[0].Activities[0].PlaceID != place.PlaceID {
		t.Errorf("kept wrong place %d", resp.Days[0].Activities[0].PlaceID)
	}
}

func TestCreateFromAISortsAndMergesDays(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlannerService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	a := testutil.CreatePlace(t, db, "A", "Tokyo", models.PlaceTypeAttraction)
	b := testutil.CreatePlace(t, db, "B", "Tokyo", models.PlaceTypeAttraction)
	c := testutil.CreatePlace(t, db, "C", "Tokyo", models.PlaceTypeAttraction)

	// 乱序给入，且 03-02 出现两次
	resp, err := svc.CreateFromAI(context.Background(), owner.UserID, &types.CreateFromAIRequest{
		Title:           "乱序草稿",
		DestinationCity: "Tokyo",
		Days: []types.PlannerDay{
			{Date: "2026-03-02", Activities: []types.PlannerActivity{{PlaceID: a.PlaceID, StartTime: "09:00"}}},
			{Date: "2026-03-01", Activities: []types.PlannerActivity{{PlaceID: b.PlaceID, StartTime: "09:00"}}},
			{Date: "2026-03-02", Activities: []types.PlannerActivity{{PlaceID: c.PlaceID, StartTime: "15:00"}}},
		},
	})
	if err != nil {
		t.Fatalf("create from ai: %v", err)
	}

	if resp.StartDate != "2026-03-01" || resp.EndDate != "2026-03-02" {
		t.Errorf("window = %s..%s, want 2026-03-01..2026-03-02", resp.StartDate, resp.EndDate)
	}
	if len(resp.Days) != 2 {
		t.Fatalf("expected 2 merged days, got %d", len(resp.Days))
	}
	if resp.Days[0].Date != "2026-03-01" || resp.Days[1].Date != "2026-03-02" {
		t.Errorf("days out of order: %s, %s", resp.Days[0].Date, resp.Days[1].Date)
	}
	if len(resp.Days[1].Activities) != 2 {
		t.Errorf("expected merged day to hold 2 activities, got %d", len(resp.Days[1].Activities))
	}
}

func TestCreateFromAIInvalidDateFallsBackToToday(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPlannerService(t, db)
	owner := testutil.CreateUser(t, db, "alice")
	place := testutil.CreatePlace(t, db, "A", "Tokyo", models.PlaceTypeAttraction)

	resp, err := svc.CreateFromAI(context.Background(), owner.UserID, &types.CreateFromAIRequest{
		Title:           "坏日期",
		DestinationCity: "Tokyo",
		Days: []types.PlannerDay{
			{Date: "not-a-date", Activities: []types.PlannerActivity{{PlaceID: place.PlaceID, StartTime: "09:00"}}},
		},
	})
	if err != nil {
		t.Fatalf("create from ai: %v", err)
	}
	today := time.Now().Format(types.DateLayout)
	if resp.Days[0].Date != today {
		t.Errorf("date = %s, want today %s", resp.Days[0].Date, today)
	}
}

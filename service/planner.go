package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 规划器的默认时间梯子，活动未给时间时按顺序取，超出取最后一档
var defaultStartTimes = []string{
	"07:30:00",
	"08:30:00",
	"11:30:00",
	"14:00:00",
	"17:00:00",
	"20:00:00",
}

var _ IPlannerService = (*PlannerService)(nil)

type IPlannerService interface {
	// CreateFromAI 把前端大模型产出的行程草稿落库成完整行程
	CreateFromAI(ctx context.Context, userID string, req *types.CreateFromAIRequest) (*types.ItineraryResponse, error)
}

type PlannerService struct {
	ItineraryDAO *dao.ItineraryDAO
	DayDAO       *dao.ItineraryDayDAO
	ActivityDAO  *dao.ItineraryActivityDAO
	PlaceDAO     *dao.PlaceDAO
	Itinerary    IItineraryService
}

func (s *PlannerService) CreateFromAI(ctx context.Context, userID string, req *types.CreateFromAIRequest) (*types.ItineraryResponse, error) {
	days := normalizePlannerDays(req.Days)
	if len(days) == 0 {
		return nil, response.NewError(400, "行程草稿为空")
	}

	start := days[0].date
	end := days[len(days)-1].date

	now := time.Now()
	it := &models.Itinerary{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       start,
		EndDate:         end,
		Budget:          req.Budget,
		DestinationCity: req.DestinationCity,
		HotelID:         req.HotelID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.ItineraryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(it).Error; err != nil {
			return err
		}

		for i, d := range days {
			day := &models.ItineraryDay{
				ItineraryID: it.ItineraryID,
				DayNumber:   i + 1,
				Date:        d.date,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.WithContext(ctx).Create(day).Error; err != nil {
				return err
			}

			used := make(map[string]bool)
			for j, a := range d.activities {
				// 草稿里的地点可能已下架，跳过不中断整个导入
				if _, err := s.PlaceDAO.FindById(ctx, a.PlaceID); err != nil {
					log.L.Warn("planner skips unknown place",
						zap.Uint64("place_id", a.PlaceID), zap.Error(err))
					continue
				}

				startTime := plannerStartTime(a.StartTime, j)
				for used[startTime] {
					startTime = bumpMinute(startTime)
				}
				used[startTime] = true

				activity := &models.ItineraryActivity{
					DayID:     day.DayID,
					PlaceID:   a.PlaceID,
					StartTime: startTime,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := tx.WithContext(ctx).Create(activity).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Itinerary.Get(ctx, userID, it.ItineraryID)
}

type plannerDay struct {
	date       time.Time
	activities []types.PlannerActivity
}

// normalizePlannerDays 解析日期、无效日期回退为今天、按日期排序、同日合并
func normalizePlannerDays(input []types.PlannerDay) []plannerDay {
	today, _ := time.Parse(types.DateLayout, time.Now().Format(types.DateLayout))

	merged := make(map[string]*plannerDay)
	for _, d := range input {
		date, err := time.Parse(types.DateLayout, d.Date)
		if err != nil {
			date = today
		}
		key := date.Format(types.DateLayout)
		if existing, ok := merged[key]; ok {
			existing.activities = append(existing.activities, d.Activities...)
			continue
		}
		merged[key] = &plannerDay{date: date, activities: d.Activities}
	}

	days := make([]plannerDay, 0, len(merged))
	for _, d := range merged {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	return days
}

func plannerStartTime(raw string, index int) string {
	if t, err := normalizeTime(raw); err == nil {
		return t
	}
	if index < len(defaultStartTimes) {
		return defaultStartTimes[index]
	}
	return defaultStartTimes[len(defaultStartTimes)-1]
}

func bumpMinute(startTime string) string {
	t, err := time.Parse(types.TimeLayout, startTime)
	if err != nil {
		return startTime
	}
	return t.Add(time.Minute).Format(types.TimeLayout)
}

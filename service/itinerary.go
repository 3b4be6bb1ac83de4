package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// 单个行程最长天数，防止误传日期把表撑爆
const maxItineraryDays = 365

var _ IItineraryService = (*ItineraryService)(nil)

type IItineraryService interface {
	Create(ctx context.Context, userID string, req *types.CreateItineraryRequest) (*types.ItineraryResponse, error)
	Get(ctx context.Context, userID string, itineraryID uint64) (*types.ItineraryResponse, error)
	ListMine(ctx context.Context, userID string, query *types.ItineraryListQuery) ([]*types.ItineraryResponse, response.Pagination, error)
	Update(ctx context.Context, userID string, itineraryID uint64, req *types.UpdateItineraryRequest) error
	Delete(ctx context.Context, userID string, itineraryID uint64) error

	// InsertDay 插入一天并保持 day_number 连续
	InsertDay(ctx context.Context, userID string, itineraryID uint64, req *types.InsertDayRequest) (*types.DayResponse, error)
	UpdateDay(ctx context.Context, userID string, itineraryID, dayID uint64, req *types.UpdateDayRequest) error
	// DeleteDay 删除一天，剩余天重排为 1..N，日期从 start_date 起连续
	DeleteDay(ctx context.Context, userID string, itineraryID, dayID uint64) error
	ListDays(ctx context.Context, userID string, itineraryID uint64) ([]types.DayResponse, error)

	AddActivity(ctx context.Context, userID string, itineraryID, dayID uint64, req *types.AddActivityRequest) (*types.ActivityResponse, error)
	UpdateActivity(ctx context.Context, userID string, itineraryID, activityID uint64, req *types.UpdateActivityRequest) error
	DeleteActivity(ctx context.Context, userID string, itineraryID, activityID uint64) error
}

type ItineraryService struct {
	ItineraryDAO *dao.ItineraryDAO
	DayDAO       *dao.ItineraryDayDAO
	ActivityDAO  *dao.ItineraryActivityDAO
	// Place 地点目录协作方，活动引用校验与读路径的地点解析都走它
	Place  IPlaceService
	Access IAccessService
	Conf   *config.Config
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(types.DateLayout, s)
	if err != nil {
		return time.Time{}, response.NewError(400, "日期格式错误，应为 YYYY-MM-DD")
	}
	return d, nil
}

// normalizeTime 接受 HH:MM 或 HH:MM:SS，统一存 HH:MM:SS
func normalizeTime(s string) (string, error) {
	if t, err := time.Parse(types.TimeLayout, s); err == nil {
		return t.Format(types.TimeLayout), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format(types.TimeLayout), nil
	}
	return "", response.NewError(400, "时间格式错误，应为 HH:MM 或 HH:MM:SS")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (s *ItineraryService) Create(ctx context.Context, userID string, req *types.CreateItineraryRequest) (*types.ItineraryResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, response.NewError(400, "结束日期不能早于开始日期")
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	if dayCount > maxItineraryDays {
		return nil, response.NewError(400, "行程天数超出上限")
	}

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

	// 建行程时把窗口内每一天都建出来
	err = s.ItineraryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(it).Error; err != nil {
			return err
		}
		for i := 0; i < dayCount; i++ {
			day := &models.ItineraryDay{
				ItineraryID: it.ItineraryID,
				DayNumber:   i + 1,
				Date:        start.AddDate(0, 0, i),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.WithContext(ctx).Create(day).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, it, true, CapabilityOwner)
}

func (s *ItineraryService) Get(ctx context.Context, userID string, itineraryID uint64) (*types.ItineraryResponse, error) {
	cap, it, err := s.Access.Capability(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if cap == CapabilityNone {
		return nil, response.NewError(403, "无权访问该行程")
	}
	return s.buildResponse(ctx, it, true, cap)
}

func (s *ItineraryService) ListMine(ctx context.Context, userID string, query *types.ItineraryListQuery) ([]*types.ItineraryResponse, response.Pagination, error) {
	page, limit := normalizePage(query.Page, query.Limit)
	offset := (page - 1) * limit

	items, total, err := s.ItineraryDAO.ListByUser(ctx, userID, query.DestinationCity, limit, offset)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	resp := make([]*types.ItineraryResponse, 0, len(items))
	for _, it := range items {
		r, err := s.buildResponse(ctx, it, false, "")
		if err != nil {
			return nil, response.Pagination{}, err
		}
		resp = append(resp, r)
	}
	return resp, response.NewPagination(page, limit, total), nil
}

func (s *ItineraryService) Update(ctx context.Context, userID string, itineraryID uint64, req *types.UpdateItineraryRequest) error {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return err
	}

	data := map[string]any{"updated_at": time.Now()}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.Budget != nil {
		data["budget"] = *req.Budget
	}
	if req.HotelID != nil {
		data["hotel_id"] = *req.HotelID
	}
	if req.IsCompleted != nil {
		data["is_completed"] = *req.IsCompleted
	}

	_, err := s.ItineraryDAO.UpdateById(ctx, itineraryID, data)
	return err
}

func (s *ItineraryService) Delete(ctx context.Context, userID string, itineraryID uint64) error {
	if _, err := s.Access.RequireOwner(ctx, userID, itineraryID); err != nil {
		return err
	}
	return s.ItineraryDAO.DeleteCascade(ctx, itineraryID)
}

func (s *ItineraryService) InsertDay(ctx context.Context, userID string, itineraryID uint64, req *types.InsertDayRequest) (*types.DayResponse, error) {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var newDay *models.ItineraryDay
	err = s.ItineraryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		// 锁行程行，同一行程的增删天串行执行
		it, err := s.ItineraryDAO.FindForUpdate(ctx, tx, itineraryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(404, "行程不存在")
			}
			return err
		}

		days, err := s.DayDAO.ListByItineraryTx(ctx, tx, itineraryID)
		if err != nil {
			return err
		}

		for _, d := range days {
			if sameDay(d.Date, date) {
				return response.NewError(409, "该日期已存在")
			}
		}
		if date.Before(it.StartDate) {
			return response.NewError(400, "日期早于行程开始日期")
		}
		if date.After(it.EndDate) {
			if !s.Conf.Itinerary.AutoExtendDates {
				return response.NewError(400, "日期晚于行程结束日期")
			}
			err := tx.WithContext(ctx).
				Model(&models.Itinerary{}).
				Where("itinerary_id = ?", itineraryID).
				Updates(map[string]any{"end_date": date, "updated_at": time.Now()}).Error
			if err != nil {
				return err
			}
		}

		// 插入位置: 第一个日期晚于新日期的天
		idx := len(days)
		for i, d := range days {
			if d.Date.After(date) {
				idx = i
				break
			}
		}

		// 腾出 day_number，再补新天
		if idx < len(days) {
			if err := s.DayDAO.ShiftFromNumber(ctx, tx, itineraryID, idx+1); err != nil {
				return err
			}
		}

		now := time.Now()
		newDay = &models.ItineraryDay{
			ItineraryID: itineraryID,
			DayNumber:   idx + 1,
			Date:        date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return tx.WithContext(ctx).Create(newDay).Error
	})
	if err != nil {
		return nil, err
	}

	return &types.DayResponse{
		DayID:       newDay.DayID,
		ItineraryID: itineraryID,
		DayNumber:   newDay.DayNumber,
		Date:        newDay.Date.Format(types.DateLayout),
		Activities:  []types.ActivityResponse{},
	}, nil
}

func (s *ItineraryService) UpdateDay(ctx context.Context, userID string, itineraryID, dayID uint64, req *types.UpdateDayRequest) error {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	return s.ItineraryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		it, err := s.ItineraryDAO.FindForUpdate(ctx, tx, itineraryID)
		if err != nil {
			return err
		}

		days, err := s.DayDAO.ListByItineraryTx(ctx, tx, itineraryID)
		if err != nil {
			return err
		}

		var target *models.ItineraryDay
		var pos int
		for i, d := range days {
			if d.DayID == dayID {
				target, pos = d, i
				break
			}
		}
		if target == nil {
			return response.NewError(404, "该天不存在")
		}

		if date.Before(it.StartDate) || date.After(it.EndDate) {
			return response.NewError(400, "日期超出行程范围")
		}
		for _, d := range days {
			if d.DayID != dayID && sameDay(d.Date, date) {
				return response.NewError(409, "该日期已存在")
			}
		}
		// 改日期不能打乱天序
		if pos > 0 && !days[pos-1].Date.Before(date) {
			return response.NewError(400, "日期与前一天冲突")
		}
		if pos < len(days)-1 && !date.Before(days[pos+1].Date) {
			return response.NewError(400, "日期与后一天冲突")
		}

		return s.DayDAO.UpdateByIdTx(ctx, tx, dayID, map[string]any{
			"date":       date,
			"updated_at": time.Now(),
		})
	})
}

func (s *ItineraryService) DeleteDay(ctx context.Context, userID string, itineraryID, dayID uint64) error {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return err
	}

	return s.ItineraryDAO.Transaction(ctx, func(tx *gorm.DB) error {
		it, err := s.ItineraryDAO.FindForUpdate(ctx, tx, itineraryID)
		if err != nil {
			return err
		}

		day, err := s.DayDAO.FindById(ctx, dayID)
		if err != nil || day.ItineraryID != itineraryID {
			return response.NewError(404, "该天不存在")
		}

		if err := s.DayDAO.DeleteWithActivities(ctx, tx, dayID); err != nil {
			return err
		}

		// 剩余天重排: day_number 1..N，日期从 start_date 起连续
		days, err := s.DayDAO.ListByItineraryTx(ctx, tx, itineraryID)
		if err != nil {
			return err
		}

		now := time.Now()
		for i, d := range days {
			num := i + 1
			date := it.StartDate.AddDate(0, 0, i)
			if d.DayNumber == num && sameDay(d.Date, date) {
				continue
			}
			err := s.DayDAO.UpdateByIdTx(ctx, tx, d.DayID, map[string]any{
				"day_number": num,
				"date":       date,
				"updated_at": now,
			})
			if err != nil {
				return err
			}
		}

		newEnd := it.StartDate
		if len(days) > 0 {
			newEnd = it.StartDate.AddDate(0, 0, len(days)-1)
		}
		return tx.WithContext(ctx).
			Model(&models.Itinerary{}).
			Where("itinerary_id = ?", itineraryID).
			Updates(map[string]any{"end_date": newEnd, "updated_at": now}).Error
	})
}

func (s *ItineraryService) ListDays(ctx context.Context, userID string, itineraryID uint64) ([]types.DayResponse, error) {
	if _, err := s.Access.RequireView(ctx, userID, itineraryID); err != nil {
		return nil, err
	}

	days, err := s.DayDAO.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	return s.buildDays(ctx, itineraryID, days)
}

func (s *ItineraryService) AddActivity(ctx context.Context, userID string, itineraryID, dayID uint64, req *types.AddActivityRequest) (*types.ActivityResponse, error) {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return nil, err
	}

	day, err := s.DayDAO.FindById(ctx, dayID)
	if err != nil || day.ItineraryID != itineraryID {
		return nil, response.NewError(404, "该天不存在")
	}

	place, err := s.Place.Get(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}

	startTime, err := normalizeTime(req.StartTime)
	if err != nil {
		return nil, err
	}

	taken, err := s.ActivityDAO.IsTimeTaken(ctx, dayID, startTime, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, response.NewError(409, "该时间已有活动")
	}

	now := time.Now()
	activity := &models.ItineraryActivity{
		DayID:     dayID,
		PlaceID:   req.PlaceID,
		StartTime: startTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ActivityDAO.Create(ctx, activity); err != nil {
		return nil, err
	}

	return &types.ActivityResponse{
		ActivityID: activity.ActivityID,
		DayID:      dayID,
		PlaceID:    activity.PlaceID,
		StartTime:  activity.StartTime,
		Place:      place,
	}, nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, userID string, itineraryID, activityID uint64, req *types.UpdateActivityRequest) error {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return err
	}

	activity, err := s.ActivityDAO.FindById(ctx, activityID)
	if err != nil {
		return response.NewError(404, "活动不存在")
	}
	day, err := s.DayDAO.FindById(ctx, activity.DayID)
	if err != nil || day.ItineraryID != itineraryID {
		return response.NewError(404, "活动不存在")
	}

	data := map[string]any{"updated_at": time.Now()}
	if req.PlaceID != nil {
		if _, err := s.Place.Get(ctx, *req.PlaceID); err != nil {
			return err
		}
		data["place_id"] = *req.PlaceID
	}
	if req.StartTime != nil {
		startTime, err := normalizeTime(*req.StartTime)
		if err != nil {
			return err
		}
		taken, err := s.ActivityDAO.IsTimeTaken(ctx, activity.DayID, startTime, activityID)
		if err != nil {
			return err
		}
		if taken {
			return response.NewError(409, "该时间已有活动")
		}
		data["start_time"] = startTime
	}

	_, err = s.ActivityDAO.UpdateById(ctx, activityID, data)
	return err
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, userID string, itineraryID, activityID uint64) error {
	if _, err := s.Access.RequireEdit(ctx, userID, itineraryID); err != nil {
		return err
	}

	activity, err := s.ActivityDAO.FindById(ctx, activityID)
	if err != nil {
		return response.NewError(404, "活动不存在")
	}
	day, err := s.DayDAO.FindById(ctx, activity.DayID)
	if err != nil || day.ItineraryID != itineraryID {
		return response.NewError(404, "活动不存在")
	}

	return s.ActivityDAO.DeleteById(ctx, activityID)
}

func (s *ItineraryService) buildResponse(ctx context.Context, it *models.Itinerary, withDays bool, capability string) (*types.ItineraryResponse, error) {
	resp := &types.ItineraryResponse{
		ItineraryID:     it.ItineraryID,
		UserID:          it.UserID,
		Title:           it.Title,
		Description:     it.Description,
		StartDate:       it.StartDate.Format(types.DateLayout),
		EndDate:         it.EndDate.Format(types.DateLayout),
		Budget:          it.Budget,
		DestinationCity: it.DestinationCity,
		IsFavorite:      it.IsFavorite,
		IsCompleted:     it.IsCompleted,
		HotelID:         it.HotelID,
		Capability:      capability,
	}

	if !withDays {
		return resp, nil
	}

	// 行程挂的酒店已下架时不报错，只是不带出来
	if it.HotelID > 0 {
		if hotel, err := s.Place.Get(ctx, it.HotelID); err == nil {
			resp.Hotel = hotel
		}
	}

	days, err := s.DayDAO.ListByItinerary(ctx, it.ItineraryID)
	if err != nil {
		return nil, err
	}
	resp.Days, err = s.buildDays(ctx, it.ItineraryID, days)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *ItineraryService) buildDays(ctx context.Context, itineraryID uint64, days []*models.ItineraryDay) ([]types.DayResponse, error) {
	result := make([]types.DayResponse, 0, len(days))

	for _, d := range days {
		activities, err := s.ActivityDAO.ListByDay(ctx, d.DayID)
		if err != nil {
			return nil, err
		}

		dayResp := types.DayResponse{
			DayID:       d.DayID,
			ItineraryID: itineraryID,
			DayNumber:   d.DayNumber,
			Date:        d.Date.Format(types.DateLayout),
			Activities:  make([]types.ActivityResponse, 0, len(activities)),
		}
		for _, a := range activities {
			item := types.ActivityResponse{
				ActivityID: a.ActivityID,
				DayID:      a.DayID,
				PlaceID:    a.PlaceID,
				StartTime:  a.StartTime,
			}
			if place, err := s.Place.Get(ctx, a.PlaceID); err == nil {
				item.Place = place
			}
			dayResp.Activities = append(dayResp.Activities, item)
		}
		result = append(result, dayResp)
	}
	return result, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = types.DefaultPage
	}
	if limit < 1 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}
	return page, limit
}

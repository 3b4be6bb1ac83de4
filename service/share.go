package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IShareService = (*ShareService)(nil)

type IShareService interface {
	// Create 仅所有者可分享，成功后给被分享人推送
	Create(ctx context.Context, userID string, req *types.CreateShareRequest) (*types.ShareResponse, error)
	Update(ctx context.Context, userID string, shareID uint64, req *types.UpdateShareRequest) error
	Delete(ctx context.Context, userID string, shareID uint64) error
	ListForItinerary(ctx context.Context, userID string, query *types.ShareListQuery) ([]*types.ShareResponse, response.Pagination, error)

	// SharedWithMe 别人分享给我的行程
	SharedWithMe(ctx context.Context, userID string, page, limit int) ([]*types.ItineraryResponse, response.Pagination, error)
	SearchUsers(ctx context.Context, userID string, query *types.SearchUsersQuery) ([]*types.UserResponse, error)
}

type ShareService struct {
	ShareDAO     *dao.ItineraryShareDAO
	ItineraryDAO *dao.ItineraryDAO
	UserDAO      *dao.Users
	Place        IPlaceService
	Access       IAccessService
	Fcm          IFcmService
}

func (s *ShareService) Create(ctx context.Context, userID string, req *types.CreateShareRequest) (*types.ShareResponse, error) {
	it, err := s.Access.RequireOwner(ctx, userID, req.ItineraryID)
	if err != nil {
		return nil, err
	}

	if req.SharedWithUserID == userID {
		return nil, response.NewError(400, "不能分享给自己")
	}

	target, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", req.SharedWithUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(404, "用户不存在")
		}
		return nil, err
	}

	existing, err := s.ShareDAO.FindByItineraryAndUser(ctx, req.ItineraryID, req.SharedWithUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(409, "该行程已分享给此用户")
	}

	now := time.Now()
	share := &models.ItineraryShare{
		ItineraryID:      req.ItineraryID,
		SharedWithUserID: req.SharedWithUserID,
		Permission:       req.Permission,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.ShareDAO.Create(ctx, share); err != nil {
		return nil, err
	}

	// 推送失败不影响分享结果
	owner, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", userID)
	if err == nil {
		go s.Fcm.NotifyItineraryShared(context.WithoutCancel(ctx),
			target.UserID, owner.Username, it.Title, share.Permission)
	}

	return &types.ShareResponse{
		ShareID:          share.ShareID,
		ItineraryID:      share.ItineraryID,
		SharedWithUserID: share.SharedWithUserID,
		Permission:       share.Permission,
		SharedWithUser:   toUserResponse(target),
	}, nil
}

func (s *ShareService) Update(ctx context.Context, userID string, shareID uint64, req *types.UpdateShareRequest) error {
	share, err := s.ShareDAO.FindById(ctx, shareID)
	if err != nil {
		return response.NewError(404, "分享记录不存在")
	}
	if _, err := s.Access.RequireOwner(ctx, userID, share.ItineraryID); err != nil {
		return err
	}
	return s.ShareDAO.UpdatePermission(ctx, shareID, req.Permission)
}

func (s *ShareService) Delete(ctx context.Context, userID string, shareID uint64) error {
	share, err := s.ShareDAO.FindById(ctx, shareID)
	if err != nil {
		return response.NewError(404, "分享记录不存在")
	}
	if _, err := s.Access.RequireOwner(ctx, userID, share.ItineraryID); err != nil {
		return err
	}
	return s.ShareDAO.DeleteById(ctx, shareID)
}

func (s *ShareService) ListForItinerary(ctx context.Context, userID string, query *types.ShareListQuery) ([]*types.ShareResponse, response.Pagination, error) {
	if query.ItineraryID == 0 {
		return nil, response.Pagination{}, response.NewError(400, "缺少 itinerary_id")
	}
	if _, err := s.Access.RequireOwner(ctx, userID, query.ItineraryID); err != nil {
		return nil, response.Pagination{}, err
	}

	page, limit := normalizePage(query.Page, query.Limit)
	shares, total, err := s.ShareDAO.List(ctx, query.ItineraryID, "", query.Permission, limit, (page-1)*limit)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	resp := make([]*types.ShareResponse, 0, len(shares))
	for _, share := range shares {
		item := &types.ShareResponse{
			ShareID:          share.ShareID,
			ItineraryID:      share.ItineraryID,
			SharedWithUserID: share.SharedWithUserID,
			Permission:       share.Permission,
		}
		if u, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", share.SharedWithUserID); err == nil {
			item.SharedWithUser = toUserResponse(u)
		}
		resp = append(resp, item)
	}
	return resp, response.NewPagination(page, limit, total), nil
}

func (s *ShareService) SharedWithMe(ctx context.Context, userID string, page, limit int) ([]*types.ItineraryResponse, response.Pagination, error) {
	page, limit = normalizePage(page, limit)

	shares, total, err := s.ShareDAO.List(ctx, 0, userID, "", limit, (page-1)*limit)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	ids := make([]uint64, 0, len(shares))
	for _, share := range shares {
		ids = append(ids, share.ItineraryID)
	}

	byID := make(map[uint64]*models.Itinerary, len(ids))
	if len(ids) > 0 {
		items, err := s.ItineraryDAO.FindAllByWhere(ctx, "itinerary_id IN ?", ids)
		if err != nil {
			return nil, response.Pagination{}, err
		}
		for _, it := range items {
			byID[it.ItineraryID] = it
		}
	}

	resp := make([]*types.ItineraryResponse, 0, len(shares))
	for _, share := range shares {
		it, ok := byID[share.ItineraryID]
		if !ok {
			continue
		}
		item := toItinerarySummary(it)
		item.Capability = share.Permission
		if owner, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", it.UserID); err == nil {
			item.Owner = toUserResponse(owner)
		}
		if it.HotelID > 0 {
			if hotel, err := s.Place.Get(ctx, it.HotelID); err == nil {
				item.Hotel = hotel
			}
		}
		resp = append(resp, item)
	}
	return resp, response.NewPagination(page, limit, total), nil
}

func (s *ShareService) SearchUsers(ctx context.Context, userID string, query *types.SearchUsersQuery) ([]*types.UserResponse, error) {
	limit := query.Limit
	if limit < 1 || limit > types.MaxLimit {
		limit = types.DefaultLimit
	}

	users, err := s.UserDAO.SearchByKeyword(ctx, query.Keyword, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]*types.UserResponse, 0, len(users))
	for _, u := range users {
		if u.UserID == userID {
			continue
		}
		resp = append(resp, toUserResponse(u))
	}
	return resp, nil
}

func toItinerarySummary(it *models.Itinerary) *types.ItineraryResponse {
	return &types.ItineraryResponse{
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
	}
}

package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"time"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	// Add 幂等，重复收藏返回已有记录
	Add(ctx context.Context, userID string, itineraryID uint64) (*types.FavoriteResponse, error)
	Remove(ctx context.Context, userID string, itineraryID uint64) error
	ListMine(ctx context.Context, userID string, query *types.FavoriteListQuery) ([]*types.FavoriteResponse, response.Pagination, error)
}

type FavoriteService struct {
	FavoriteDAO  *dao.FavoriteItineraryDAO
	ItineraryDAO *dao.ItineraryDAO
	Access       IAccessService
}

func (s *FavoriteService) Add(ctx context.Context, userID string, itineraryID uint64) (*types.FavoriteResponse, error) {
	it, err := s.Access.RequireView(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	existing, err := s.FavoriteDAO.Find(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &types.FavoriteResponse{
			FavoriteID:  existing.FavoriteID,
			ItineraryID: existing.ItineraryID,
		}, nil
	}

	fav := &models.FavoriteItinerary{
		UserID:      userID,
		ItineraryID: itineraryID,
		CreatedAt:   time.Now(),
	}
	if err := s.FavoriteDAO.Create(ctx, fav); err != nil {
		return nil, err
	}

	// 收藏自己的行程时同步 is_favorite 标记
	if it.UserID == userID {
		_, _ = s.ItineraryDAO.UpdateById(ctx, itineraryID, map[string]any{
			"is_favorite": true,
			"updated_at":  time.Now(),
		})
	}

	return &types.FavoriteResponse{
		FavoriteID:  fav.FavoriteID,
		ItineraryID: fav.ItineraryID,
	}, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID string, itineraryID uint64) error {
	existing, err := s.FavoriteDAO.Find(ctx, userID, itineraryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.NewError(404, "未收藏该行程")
	}

	if err := s.FavoriteDAO.Delete(ctx, userID, itineraryID); err != nil {
		return err
	}

	it, err := s.ItineraryDAO.FindById(ctx, itineraryID)
	if err == nil && it.UserID == userID {
		_, _ = s.ItineraryDAO.UpdateById(ctx, itineraryID, map[string]any{
			"is_favorite": false,
			"updated_at":  time.Now(),
		})
	}
	return nil
}

func (s *FavoriteService) ListMine(ctx context.Context, userID string, query *types.FavoriteListQuery) ([]*types.FavoriteResponse, response.Pagination, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	favs, total, err := s.FavoriteDAO.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	ids := make([]uint64, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItineraryID)
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

	resp := make([]*types.FavoriteResponse, 0, len(favs))
	for _, f := range favs {
		item := &types.FavoriteResponse{
			FavoriteID:  f.FavoriteID,
			ItineraryID: f.ItineraryID,
		}
		if it, ok := byID[f.ItineraryID]; ok {
			item.Itinerary = toItinerarySummary(it)
		}
		resp = append(resp, item)
	}
	return resp, response.NewPagination(page, limit, total), nil
}

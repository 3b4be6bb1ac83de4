package service

import (
	"Tripper/dao"
	"Tripper/models"
	"context"
	"errors"

	"Tripper/pkg/response"

	"gorm.io/gorm"
)

// 调用方对一个行程的能力等级
const (
	CapabilityOwner = "owner"
	CapabilityEdit  = "edit"
	CapabilityView  = "view"
	CapabilityNone  = "none"
)

var _ IAccessService = (*AccessService)(nil)

type IAccessService interface {
	// Capability 计算 userID 对行程的能力等级，行程不存在返回 404
	Capability(ctx context.Context, userID string, itineraryID uint64) (string, *models.Itinerary, error)

	// RequireView 读权限: owner / edit / view
	RequireView(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error)

	// RequireEdit 写权限: owner / edit
	RequireEdit(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error)

	// RequireOwner 仅所有者
	RequireOwner(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error)
}

type AccessService struct {
	ItineraryDAO *dao.ItineraryDAO
	ShareDAO     *dao.ItineraryShareDAO
}

func (s *AccessService) Capability(ctx context.Context, userID string, itineraryID uint64) (string, *models.Itinerary, error) {
	it, err := s.ItineraryDAO.FindById(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CapabilityNone, nil, response.NewError(404, "行程不存在")
		}
		return CapabilityNone, nil, err
	}

	if it.UserID == userID {
		return CapabilityOwner, it, nil
	}

	share, err := s.ShareDAO.FindByItineraryAndUser(ctx, itineraryID, userID)
	if err != nil {
		return CapabilityNone, nil, err
	}
	if share == nil {
		return CapabilityNone, it, nil
	}

	switch share.Permission {
	case models.PermissionEdit:
		return CapabilityEdit, it, nil
	default:
		return CapabilityView, it, nil
	}
}

func (s *AccessService) RequireView(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error) {
	cap, it, err := s.Capability(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if cap == CapabilityNone {
		return nil, response.NewError(403, "无权访问该行程")
	}
	return it, nil
}

func (s *AccessService) RequireEdit(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error) {
	cap, it, err := s.Capability(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if cap != CapabilityOwner && cap != CapabilityEdit {
		return nil, response.NewError(403, "无权修改该行程")
	}
	return it, nil
}

func (s *AccessService) RequireOwner(ctx context.Context, userID string, itineraryID uint64) (*models.Itinerary, error) {
	cap, it, err := s.Capability(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if cap != CapabilityOwner {
		return nil, response.NewError(403, "仅行程所有者可执行该操作")
	}
	return it, nil
}

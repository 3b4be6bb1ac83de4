package dao

import (
	"Tripper/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ItineraryShareDAO struct {
	Repo[models.ItineraryShare]
}

func NewItineraryShareDAO(db *gorm.DB) *ItineraryShareDAO {
	return &ItineraryShareDAO{
		Repo: NewRepo[models.ItineraryShare](db),
	}
}

// FindByItineraryAndUser 不存在时返回 nil，不报错
func (d *ItineraryShareDAO) FindByItineraryAndUser(ctx context.Context, itineraryID uint64, userID string) (*models.ItineraryShare, error) {
	var share models.ItineraryShare
	err := d.Db.WithContext(ctx).
		Where("itinerary_id = ? AND shared_with_user_id = ?", itineraryID, userID).
		First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// List 可选按行程/用户/权限过滤
func (d *ItineraryShareDAO) List(ctx context.Context, itineraryID uint64, userID, permission string, limit, offset int) ([]*models.ItineraryShare, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.ItineraryShare{})
	if itineraryID > 0 {
		query = query.Where("itinerary_id = ?", itineraryID)
	}
	if userID != "" {
		query = query.Where("shared_with_user_id = ?", userID)
	}
	if permission != "" {
		query = query.Where("permission = ?", permission)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shares []*models.ItineraryShare
	err := query.Order("share_id").Limit(limit).Offset(offset).Find(&shares).Error
	return shares, total, err
}

func (d *ItineraryShareDAO) UpdatePermission(ctx context.Context, shareID uint64, permission string) error {
	return d.Db.WithContext(ctx).
		Model(&models.ItineraryShare{}).
		Where("share_id = ?", shareID).
		Update("permission", permission).Error
}

func (d *ItineraryShareDAO) DeleteById(ctx context.Context, shareID uint64) error {
	return d.Db.WithContext(ctx).
		Where("share_id = ?", shareID).
		Delete(&models.ItineraryShare{}).Error
}

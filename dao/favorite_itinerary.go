package dao

import (
	"Tripper/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FavoriteItineraryDAO struct {
	Repo[models.FavoriteItinerary]
}

func NewFavoriteItineraryDAO(db *gorm.DB) *FavoriteItineraryDAO {
	return &FavoriteItineraryDAO{
		Repo: NewRepo[models.FavoriteItinerary](db),
	}
}

// Find 不存在时返回 nil，不报错
func (d *FavoriteItineraryDAO) Find(ctx context.Context, userID string, itineraryID uint64) (*models.FavoriteItinerary, error) {
	var fav models.FavoriteItinerary
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND itinerary_id = ?", userID, itineraryID).
		First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListByUser 按收藏时间倒序分页
func (d *FavoriteItineraryDAO) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.FavoriteItinerary, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.FavoriteItinerary{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favs []*models.FavoriteItinerary
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&favs).Error
	return favs, total, err
}

func (d *FavoriteItineraryDAO) Delete(ctx context.Context, userID string, itineraryID uint64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND itinerary_id = ?", userID, itineraryID).
		Delete(&models.FavoriteItinerary{}).Error
}

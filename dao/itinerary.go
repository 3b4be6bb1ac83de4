package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type ItineraryDAO struct {
	Repo[models.Itinerary]
}

func NewItineraryDAO(db *gorm.DB) *ItineraryDAO {
	return &ItineraryDAO{
		Repo: NewRepo[models.Itinerary](db),
	}
}

// FindForUpdate 事务内锁行，序列化同一行程的并发改天操作
func (d *ItineraryDAO) FindForUpdate(ctx context.Context, tx *gorm.DB, itineraryID uint64) (*models.Itinerary, error) {
	var it models.Itinerary
	err := LockClause(tx.WithContext(ctx)).
		Where("itinerary_id = ?", itineraryID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListByUser 按创建时间倒序，destination 可选
func (d *ItineraryDAO) ListByUser(ctx context.Context, userID, destination string, limit, offset int) ([]*models.Itinerary, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Itinerary{}).Where("user_id = ?", userID)
	if destination != "" {
		query = query.Where("destination_city = ?", destination)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.Itinerary
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (d *ItineraryDAO) UpdateById(ctx context.Context, itineraryID uint64, data map[string]any) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("itinerary_id = ?", itineraryID).
		Updates(data)
	return res.RowsAffected, res.Error
}

// DeleteCascade 删除行程及其天、活动、分享、收藏
func (d *ItineraryDAO) DeleteCascade(ctx context.Context, itineraryID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteItineraryTrees(tx, []uint64{itineraryID})
	})
}

// DeleteAllByOwner 删除某用户的全部行程树，须在事务内调用
func (d *ItineraryDAO) DeleteAllByOwner(tx *gorm.DB, userID string) error {
	var ids []uint64
	if err := tx.Model(&models.Itinerary{}).
		Where("user_id = ?", userID).
		Pluck("itinerary_id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return deleteItineraryTrees(tx, ids)
}

func deleteItineraryTrees(tx *gorm.DB, ids []uint64) error {
	var dayIDs []uint64
	if err := tx.Model(&models.ItineraryDay{}).
		Where("itinerary_id IN ?", ids).
		Pluck("day_id", &dayIDs).Error; err != nil {
		return err
	}
	if len(dayIDs) > 0 {
		if err := tx.Where("day_id IN ?", dayIDs).Delete(&models.ItineraryActivity{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("itinerary_id IN ?", ids).Delete(&models.ItineraryDay{}).Error; err != nil {
		return err
	}
	if err := tx.Where("itinerary_id IN ?", ids).Delete(&models.ItineraryShare{}).Error; err != nil {
		return err
	}
	if err := tx.Where("itinerary_id IN ?", ids).Delete(&models.FavoriteItinerary{}).Error; err != nil {
		return err
	}
	return tx.Where("itinerary_id IN ?", ids).Delete(&models.Itinerary{}).Error
}

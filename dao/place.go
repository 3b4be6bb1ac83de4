package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type PlaceDAO struct {
	Repo[models.Place]
}

func NewPlaceDAO(db *gorm.DB) *PlaceDAO {
	return &PlaceDAO{
		Repo: NewRepo[models.Place](db),
	}
}

// List 按城市/类型过滤，两者都可为空
func (d *PlaceDAO) List(ctx context.Context, city, placeType string, limit, offset int) ([]*models.Place, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Place{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if placeType != "" {
		query = query.Where("type = ?", placeType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var places []*models.Place
	err := query.Order("place_id").Limit(limit).Offset(offset).Find(&places).Error
	return places, total, err
}

func (d *PlaceDAO) UpdateById(ctx context.Context, placeID uint64, data map[string]any) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Place{}).
		Where("place_id = ?", placeID).
		Updates(data)
	return res.RowsAffected, res.Error
}

func (d *PlaceDAO) DeleteById(ctx context.Context, placeID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先清掉子表
		if err := tx.Where("place_id = ?", placeID).Delete(&models.PlacePhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", placeID).Delete(&models.RestaurantDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", placeID).Delete(&models.HotelDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", placeID).Delete(&models.AttractionDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("place_id = ?", placeID).Delete(&models.Place{}).Error
	})
}

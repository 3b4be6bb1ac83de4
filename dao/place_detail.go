package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type RestaurantDetailDAO struct {
	Repo[models.RestaurantDetail]
}

func NewRestaurantDetailDAO(db *gorm.DB) *RestaurantDetailDAO {
	return &RestaurantDetailDAO{Repo: NewRepo[models.RestaurantDetail](db)}
}

func (d *RestaurantDetailDAO) FindByPlace(ctx context.Context, placeID uint64) (*models.RestaurantDetail, error) {
	return d.Repo.FindByWhere(ctx, "place_id = ?", placeID)
}

func (d *RestaurantDetailDAO) List(ctx context.Context, limit, offset int) ([]*models.RestaurantDetail, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.RestaurantDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*models.RestaurantDetail
	err := d.Db.WithContext(ctx).Order("restaurant_detail_id").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (d *RestaurantDetailDAO) DeleteByPlace(ctx context.Context, placeID uint64) error {
	return d.Db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&models.RestaurantDetail{}).Error
}

type HotelDetailDAO struct {
	Repo[models.HotelDetail]
}

func NewHotelDetailDAO(db *gorm.DB) *HotelDetailDAO {
	return &HotelDetailDAO{Repo: NewRepo[models.HotelDetail](db)}
}

func (d *HotelDetailDAO) FindByPlace(ctx context.Context, placeID uint64) (*models.HotelDetail, error) {
	return d.Repo.FindByWhere(ctx, "place_id = ?", placeID)
}

func (d *HotelDetailDAO) List(ctx context.Context, limit, offset int) ([]*models.HotelDetail, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.HotelDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*models.HotelDetail
	err := d.Db.WithContext(ctx).Order("hotel_detail_id").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (d *HotelDetailDAO) DeleteByPlace(ctx context.Context, placeID uint64) error {
	return d.Db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&models.HotelDetail{}).Error
}

type AttractionDetailDAO struct {
	Repo[models.AttractionDetail]
}

func NewAttractionDetailDAO(db *gorm.DB) *AttractionDetailDAO {
	return &AttractionDetailDAO{Repo: NewRepo[models.AttractionDetail](db)}
}

func (d *AttractionDetailDAO) FindByPlace(ctx context.Context, placeID uint64) (*models.AttractionDetail, error) {
	return d.Repo.FindByWhere(ctx, "place_id = ?", placeID)
}

func (d *AttractionDetailDAO) List(ctx context.Context, limit, offset int) ([]*models.AttractionDetail, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.AttractionDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*models.AttractionDetail
	err := d.Db.WithContext(ctx).Order("attraction_detail_id").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (d *AttractionDetailDAO) DeleteByPlace(ctx context.Context, placeID uint64) error {
	return d.Db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&models.AttractionDetail{}).Error
}

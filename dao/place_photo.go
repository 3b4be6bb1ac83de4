package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type PlacePhotoDAO struct {
	Repo[models.PlacePhoto]
}

func NewPlacePhotoDAO(db *gorm.DB) *PlacePhotoDAO {
	return &PlacePhotoDAO{
		Repo: NewRepo[models.PlacePhoto](db),
	}
}

// ListByPlace 主图排前
func (d *PlacePhotoDAO) ListByPlace(ctx context.Context, placeID uint64) ([]*models.PlacePhoto, error) {
	var photos []*models.PlacePhoto
	err := d.Db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("is_primary DESC, photo_id").
		Find(&photos).Error
	return photos, err
}

func (d *PlacePhotoDAO) DeleteById(ctx context.Context, photoID uint64) error {
	return d.Db.WithContext(ctx).
		Where("photo_id = ?", photoID).
		Delete(&models.PlacePhoto{}).Error
}

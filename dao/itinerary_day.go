package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type ItineraryDayDAO struct {
	Repo[models.ItineraryDay]
}

func NewItineraryDayDAO(db *gorm.DB) *ItineraryDayDAO {
	return &ItineraryDayDAO{
		Repo: NewRepo[models.ItineraryDay](db),
	}
}

// ListByItinerary 按 day_number 升序
func (d *ItineraryDayDAO) ListByItinerary(ctx context.Context, itineraryID uint64) ([]*models.ItineraryDay, error) {
	return d.listByItinerary(ctx, d.Db, itineraryID)
}

// ListByItineraryTx 事务版本，重排时在持锁事务内读
func (d *ItineraryDayDAO) ListByItineraryTx(ctx context.Context, tx *gorm.DB, itineraryID uint64) ([]*models.ItineraryDay, error) {
	return d.listByItinerary(ctx, tx, itineraryID)
}

func (d *ItineraryDayDAO) listByItinerary(ctx context.Context, db *gorm.DB, itineraryID uint64) ([]*models.ItineraryDay, error) {
	var days []*models.ItineraryDay
	err := db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("day_number").
		Find(&days).Error
	return days, err
}

// ShiftFromNumber 把 day_number >= from 的天整体 +1，给插入腾位
func (d *ItineraryDayDAO) ShiftFromNumber(ctx context.Context, tx *gorm.DB, itineraryID uint64, from int) error {
	return tx.WithContext(ctx).
		Model(&models.ItineraryDay{}).
		Where("itinerary_id = ? AND day_number >= ?", itineraryID, from).
		Update("day_number", gorm.Expr("day_number + 1")).Error
}

func (d *ItineraryDayDAO) UpdateByIdTx(ctx context.Context, tx *gorm.DB, dayID uint64, data map[string]any) error {
	return tx.WithContext(ctx).
		Model(&models.ItineraryDay{}).
		Where("day_id = ?", dayID).
		Updates(data).Error
}

func (d *ItineraryDayDAO) UpdateById(ctx context.Context, dayID uint64, data map[string]any) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.ItineraryDay{}).
		Where("day_id = ?", dayID).
		Updates(data)
	return res.RowsAffected, res.Error
}

// DeleteWithActivities 删天并带走它的活动
func (d *ItineraryDayDAO) DeleteWithActivities(ctx context.Context, tx *gorm.DB, dayID uint64) error {
	if err := tx.WithContext(ctx).Where("day_id = ?", dayID).Delete(&models.ItineraryActivity{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("day_id = ?", dayID).Delete(&models.ItineraryDay{}).Error
}

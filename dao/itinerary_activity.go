package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type ItineraryActivityDAO struct {
	Repo[models.ItineraryActivity]
}

func NewItineraryActivityDAO(db *gorm.DB) *ItineraryActivityDAO {
	return &ItineraryActivityDAO{
		Repo: NewRepo[models.ItineraryActivity](db),
	}
}

// ListByDay 按 start_time 升序
func (d *ItineraryActivityDAO) ListByDay(ctx context.Context, dayID uint64) ([]*models.ItineraryActivity, error) {
	var activities []*models.ItineraryActivity
	err := d.Db.WithContext(ctx).
		Where("day_id = ?", dayID).
		Order("start_time").
		Find(&activities).Error
	return activities, err
}

// IsTimeTaken 同一天内 start_time 是否被占用，excludeID 用于更新时排除自己
func (d *ItineraryActivityDAO) IsTimeTaken(ctx context.Context, dayID uint64, startTime string, excludeID uint64) (bool, error) {
	query := d.Db.WithContext(ctx).
		Model(&models.ItineraryActivity{}).
		Where("day_id = ? AND start_time = ?", dayID, startTime)
	if excludeID > 0 {
		query = query.Where("itinerary_activity_id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (d *ItineraryActivityDAO) UpdateById(ctx context.Context, activityID uint64, data map[string]any) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.ItineraryActivity{}).
		Where("itinerary_activity_id = ?", activityID).
		Updates(data)
	return res.RowsAffected, res.Error
}

func (d *ItineraryActivityDAO) DeleteById(ctx context.Context, activityID uint64) error {
	return d.Db.WithContext(ctx).
		Where("itinerary_activity_id = ?", activityID).
		Delete(&models.ItineraryActivity{}).Error
}

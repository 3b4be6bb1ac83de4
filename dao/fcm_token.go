package dao

import (
	"Tripper/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type FCMTokenDAO struct {
	Repo[models.FCMToken]
}

func NewFCMTokenDAO(db *gorm.DB) *FCMTokenDAO {
	return &FCMTokenDAO{
		Repo: NewRepo[models.FCMToken](db),
	}
}

// GetActiveTokens 用户当前生效的推送 token
func (d *FCMTokenDAO) GetActiveTokens(ctx context.Context, userID string) ([]*models.FCMToken, error) {
	return d.Repo.FindAllByWhere(ctx, "user_id = ? AND is_active = ?", userID, true)
}

// Upsert 已存在则重新激活并更新设备信息，否则新建
func (d *FCMTokenDAO) Upsert(ctx context.Context, userID, fcmToken, device string) error {
	now := time.Now()

	res := d.Db.WithContext(ctx).
		Model(&models.FCMToken{}).
		Where("user_id = ? AND fcm_token = ?", userID, fcmToken).
		Updates(map[string]any{
			"is_active":  true,
			"device":     device,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	token := models.FCMToken{
		UserID:    userID,
		FcmToken:  fcmToken,
		Device:    device,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d.Db.WithContext(ctx).Create(&token).Error
}

func (d *FCMTokenDAO) Deactivate(ctx context.Context, userID, fcmToken string) error {
	return d.Db.WithContext(ctx).
		Model(&models.FCMToken{}).
		Where("user_id = ? AND fcm_token = ?", userID, fcmToken).
		Update("is_active", false).Error
}

func (d *FCMTokenDAO) DeactivateAll(ctx context.Context, userID string) error {
	return d.Db.WithContext(ctx).
		Model(&models.FCMToken{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
}

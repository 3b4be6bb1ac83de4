package dao

import (
	"Tripper/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// IsUsernameExist 判断用户名是否已存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, userID string, data map[string]any) (int64, error) {
	res := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("user_id = ?", userID).
		Updates(data)
	return res.RowsAffected, res.Error
}

// List 按注册时间倒序分页，keyword 可选
func (u *Users) List(ctx context.Context, keyword string, limit, offset int) ([]*models.Users, int64, error) {
	query := u.Db.WithContext(ctx).Model(&models.Users{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR full_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*models.Users
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// SearchByKeyword 按用户名/邮箱/姓名模糊搜索（分享弹窗用）
func (u *Users) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]*models.Users, error) {
	var users []*models.Users
	like := "%" + keyword + "%"
	err := u.Db.WithContext(ctx).
		Where("username LIKE ? OR email LIKE ? OR full_name LIKE ?", like, like, like).
		Limit(limit).
		Find(&users).Error
	return users, err
}

package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/encrypt"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetMe(ctx context.Context, userID string) (*types.UserResponse, error)
	UpdateMe(ctx context.Context, userID string, req *types.UpdateMeRequest) (*types.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *types.ChangePasswordRequest) error
	DeleteMe(ctx context.Context, userID string) error
	UploadAvatar(ctx context.Context, userID string, header *multipart.FileHeader) (*types.UploadAvatarResponse, error)
}

type UserService struct {
	UserDAO      *dao.Users
	ItineraryDAO *dao.ItineraryDAO
	Oss          IOssService
}

func (s *UserService) GetMe(ctx context.Context, userID string) (*types.UserResponse, error) {
	user, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(404, "用户不存在")
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *UserService) UpdateMe(ctx context.Context, userID string, req *types.UpdateMeRequest) (*types.UserResponse, error) {
	data := map[string]any{"updated_at": time.Now()}

	if req.Username != "" {
		existing, err := s.UserDAO.FindByUsername(ctx, req.Username)
		if err == nil && existing.UserID != userID {
			return nil, response.NewError(409, "该用户名已存在")
		}
		data["username"] = req.Username
	}
	if req.FullName != "" {
		data["full_name"] = req.FullName
	}
	if req.Preferences != nil {
		data["preferences"] = req.Preferences
	}
	if req.BudgetPreference != nil {
		data["budget_preference"] = *req.BudgetPreference
	}

	if _, err := s.UserDAO.UpdateById(ctx, userID, data); err != nil {
		return nil, err
	}
	return s.GetMe(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, req *types.ChangePasswordRequest) error {
	user, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", userID)
	if err != nil {
		return response.NewError(404, "用户不存在")
	}
	if !encrypt.VerifyPassword(user.Password, req.OldPassword) {
		return response.NewError(401, "原密码错误")
	}
	if req.NewPassword == req.OldPassword {
		return response.NewError(400, "新密码不能与原密码相同")
	}

	_, err = s.UserDAO.UpdateById(ctx, userID, map[string]any{
		"password":   encrypt.HashPassword(req.NewPassword),
		"updated_at": time.Now(),
	})
	return err
}

// DeleteMe 连同名下行程树、收到的分享、收藏和推送 token 一起清掉
func (s *UserService) DeleteMe(ctx context.Context, userID string) error {
	return s.UserDAO.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ItineraryDAO.DeleteAllByOwner(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("shared_with_user_id = ?", userID).Delete(&models.ItineraryShare{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.FavoriteItinerary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.FCMToken{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Users{}).Error
	})
}

func (s *UserService) UploadAvatar(ctx context.Context, userID string, header *multipart.FileHeader) (*types.UploadAvatarResponse, error) {
	url, err := s.Oss.UploadImage(ctx, "avatar", header)
	if err != nil {
		return nil, err
	}

	_, err = s.UserDAO.UpdateById(ctx, userID, map[string]any{
		"profile_picture": url,
		"updated_at":      time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &types.UploadAvatarResponse{ProfilePicture: url}, nil
}

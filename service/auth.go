package service

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/encrypt"
	"Tripper/pkg/jwt"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// refresh token 剩余有效期低于该值时轮换
const refreshRotateBuffer = 3 * 24 * time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
	Refresh(ctx context.Context, req *types.RefreshRequest) (*types.TokenResponse, error)
	// Logout 注销当前设备的推送 token
	Logout(ctx context.Context, userID string, req *types.LogoutRequest) error
	// LogoutAll 注销该用户全部推送 token
	LogoutAll(ctx context.Context, userID string) error
	RegisterFcmToken(ctx context.Context, userID string, req *types.RegisterFcmTokenRequest) error
}

type AuthService struct {
	UserDAO  *dao.Users
	TokenDAO *dao.FCMTokenDAO
	Conf     *config.Config
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(409, "该邮箱已注册")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(409, "该用户名已存在")
	}

	now := time.Now()
	user := &models.Users{
		UserID:    uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  encrypt.HashPassword(req.Password),
		FullName:  req.FullName,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	log.L.Info("user registered", zap.String("user_id", user.UserID))
	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(401, "邮箱或密码错误")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.NewError(401, "邮箱或密码错误")
	}

	if req.FcmToken != "" {
		if err := s.TokenDAO.Upsert(ctx, user.UserID, req.FcmToken, req.Device); err != nil {
			log.L.Warn("register fcm token failed", zap.String("user_id", user.UserID), zap.Error(err))
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, req *types.RefreshRequest) (*types.TokenResponse, error) {
	secret := []byte(s.Conf.Jwt.Secret)

	claims, err := jwt.ParseToken(secret, jwt.TypeRefresh, req.RefreshToken)
	if err != nil {
		return nil, response.NewError(401, "refresh token 无效或已过期")
	}

	user, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", claims.UserID)
	if err != nil {
		return nil, response.NewError(401, "用户不存在")
	}

	access, err := jwt.GenerateToken(secret, user.UserID, jwt.TypeAccess,
		time.Duration(s.Conf.Jwt.AccessExpireMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	// 快过期才轮换，避免每次刷新都下发新 refresh token
	refresh := req.RefreshToken
	if jwt.ShouldRotateRefreshToken(claims, refreshRotateBuffer) {
		refresh, err = jwt.GenerateToken(secret, user.UserID, jwt.TypeRefresh,
			time.Duration(s.Conf.Jwt.RefreshExpireDays)*24*time.Hour)
		if err != nil {
			return nil, err
		}
	}

	return &types.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         toUserResponse(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string, req *types.LogoutRequest) error {
	if req.FcmToken == "" {
		return nil
	}
	return s.TokenDAO.Deactivate(ctx, userID, req.FcmToken)
}

func (s *AuthService) LogoutAll(ctx context.Context, userID string) error {
	return s.TokenDAO.DeactivateAll(ctx, userID)
}

func (s *AuthService) RegisterFcmToken(ctx context.Context, userID string, req *types.RegisterFcmTokenRequest) error {
	return s.TokenDAO.Upsert(ctx, userID, req.FcmToken, req.Device)
}

func (s *AuthService) issueTokens(user *models.Users) (*types.TokenResponse, error) {
	return issueTokenPair(s.Conf, user)
}

func issueTokenPair(conf *config.Config, user *models.Users) (*types.TokenResponse, error) {
	secret := []byte(conf.Jwt.Secret)

	access, err := jwt.GenerateToken(secret, user.UserID, jwt.TypeAccess,
		time.Duration(conf.Jwt.AccessExpireMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.UserID, jwt.TypeRefresh,
		time.Duration(conf.Jwt.RefreshExpireDays)*24*time.Hour)
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(u *models.Users) *types.UserResponse {
	return &types.UserResponse{
		UserID:           u.UserID,
		Username:         u.Username,
		Email:            u.Email,
		FullName:         u.FullName,
		Role:             u.Role,
		ProfilePicture:   u.ProfilePicture,
		Preferences:      u.Preferences,
		BudgetPreference: u.BudgetPreference,
	}
}
